// Package regulafalsi finds one root of a continuous function inside a
// sign-changing bracket using the false-position method.
package regulafalsi
