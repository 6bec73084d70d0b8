// Package todo holds the task list state and the transforms that drive it.
//
// A List is a value. Every operation returns a new List and leaves the
// receiver untouched, so the caller owns exactly one current instance and
// replaces it wholesale after each operation:
//
//	l := todo.List{}
//	l = l.Add("buy milk")
//	l = l.Complete(1)
//	for t := range l.Filter(todo.FilterActive) {
//		fmt.Println(t.Text)
//	}
//
// # Task Status Values
//
//   - "active": Task is pending
//   - "completed": Task is done; completed is terminal
//
// # Identity and Order
//
// Each task carries an id and an order, both assigned on Add as one more than
// the highest value the list has ever held. Neither is reused after deletion.
//
// Reorder is a positional splice: it moves a task to sit directly after the
// drop target and never renumbers order. After a reorder the position in the
// list is the display order; order is only a stable handle for drag
// bookkeeping and must not be used as a sort key.
//
// # Unknown IDs and Blank Input
//
// Add with blank text and Complete, Delete or Reorder on an unknown id are
// no-ops. The Try variants report why through ErrInvalidInput and ErrNotFound.
//
// # Snapshots
//
// A List can be exported to and imported from a snapshot file (JSON, or YAML
// when the path ends in .yaml or .yml). Imports are checked against the
// embedded JSON Schema returned by Schema:
//
//	{
//	  "schema_version": 1,
//	  "last_id": 3,
//	  "last_order": 3,
//	  "tasks": [
//	    {"id": 1, "text": "buy milk", "status": "active", "order": 1}
//	  ]
//	}
package todo
