// Package tracker holds the user, project and task model.
//
// The model is a strict ownership tree:
//
//	User ──owns──▶ Project ──owns──▶ Task
//
// Every collection keeps insertion order and is never sorted. Names and
// titles are not required to be unique; lookups resolve ambiguity by
// returning the first match, scanning users in creation order, then each
// user's projects, then each project's tasks.
//
// # Records
//
// Entities convert to and from their on-disk records with explicit
// Encode/Decode functions composed bottom-up (Task → Project → User):
//
//	[
//	  {
//	    "name": "Alice",
//	    "projects": [
//	      {
//	        "name": "Website",
//	        "tasks": [
//	          {"title": "Design mockups", "completed": true}
//	        ]
//	      }
//	    ]
//	  }
//	]
//
// Decoding works on the generic value produced by encoding/json and fails
// with a *DecodeError when a field is absent or has the wrong type.
package tracker
