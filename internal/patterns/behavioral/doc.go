// Package behavioral holds demos of behavioral design patterns: chain of
// responsibility, command, iterator and mediator.
//
// Every demo writes its trace to the io.Writer it is given and shares no state
// with any other demo.
package behavioral
