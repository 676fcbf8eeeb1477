// Package example is a small Go package whose exports the scanner tests list.
package example

const (
	// Answer is an exported constant.
	Answer = 42

	internalConstant = 0
)

// DefaultGreeting is an exported variable.
var DefaultGreeting = "hello"

// Greeter produces greeting messages.
type Greeter struct {
	Name string
}

// Speaker is an exported interface.
type Speaker interface {
	Greet() string
}

// NewGreeter constructs a Greeter.
func NewGreeter(name string) *Greeter {
	return &Greeter{Name: name}
}

// Greet is a method and so not part of the package scope.
func (g *Greeter) Greet() string {
	return DefaultGreeting + " " + g.Name
}

func helper() int {
	return internalConstant
}
