// Package main is numctl, a command-line client for the numerics API.
//
// Each command sends one request and prints the JSON Result. The exit
// status is 0 on success, 1 when the method ran but did not succeed and 2
// for usage or transport errors.
//
// Environment:
//   - NUMCTL_SERVER   API base URL (default http://localhost:8000)
//   - NUMCTL_TIMEOUT  request timeout (default 30s)
//   - NUMCTL_RETRIES  transport retries (default 3)
//
// Usage:
//
//	numctl jacobi -a '[[4,-1,0],[-1,4,-1],[0,-1,4]]' -b '[5,0,6]'
//	numctl root -f 'x**2-4' -a 0 -b 3
//	numctl diff -method central -f 'sin(x)' -x '[1]'
//	numctl eval -f 'exp(x)' -x '[0,1]'
package main
