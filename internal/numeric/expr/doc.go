// Package expr evaluates restricted single-variable arithmetic expressions.
//
// The accepted language is deliberately small:
//
//	numbers      2, 0.5, .25, 1e-3
//	variable     x
//	constants    pi, e
//	operators    + - * / // % ** ^ (unary + and -)
//	functions    sin cos tan exp log sqrt abs
//
// // is floor division and % is the floored remainder, so 7 % -3 is -2 and
// -7 // 2 is -4. Both report ErrDomain for a zero divisor.
//
// Everything else (assignment, attribute access, indexing, string literals,
// other names) is rejected by Compile. Errors wrap one of ErrSyntax,
// ErrUnknownIdentifier or ErrDomain and can be inspected with errors.Is.
//
// Example:
//
//	f, err := expr.Compile("x**2 - 4")
//	if err != nil {
//	    return err
//	}
//	y, err := f.Eval(3) // 5
package expr
