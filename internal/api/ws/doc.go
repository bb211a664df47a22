// Package ws streams solver runs over WebSocket.
//
// Protocol (JSON text frames):
//
//	-> {"type": "solve", "tool_id": "numeric.jacobi", "params": {...}}
//	<- {"type": "step", "tool_id": ..., "step": {...}}   one per iteration record
//	<- {"type": "result", "tool_id": ..., "result": {...}}
//
//	-> {"type": "ping"}
//	<- {"type": "pong"}
//
// Each connection gets a UUID session ID, announced in the opening
// "system" frame. Bad tool IDs and malformed params produce an "error"
// frame and leave the connection open.
package ws
