// Package compiler turns template text into mustache.Template trees.
//
// Supported tags:
//
//	{{name}}            escaped variable
//	{{{name}}}          unescaped variable
//	{{&name}}           unescaped variable
//	{{#name}}..{{/name}} section
//	{{^name}}..{{/name}} inverted section
//	{{! comment }}      comment
//
// Names are dotted key paths ("user.address.city"), or "." for the current
// frame. Partials and delimiter changes are not supported.
//
// Malformed text yields a *ParseError carrying the line of the faulty tag:
//
//	_, err := compiler.Compile("{{#open}}")
//	var perr *compiler.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.Line, perr.Msg)
//	}
package compiler
