package foldz

import (
	"context"
	"sync"
)

// Product accumulates numeric values by multiplication. The identity value
// is one by default; WithIdentity substitutes a caller-supplied identity,
// which Reset restores. The product of no elements is the identity, so a
// fresh Product reports 1.
//
// Multiply is the natural update method; Add is an alias for it so a
// Product can sit in a Fanout alongside other sinks.
//
// Example:
//
//	factorial := foldz.NewProduct[int]("factorial")
//	for n := 1; n <= 5; n++ {
//	    factorial.Multiply(ctx, n)
//	}
//	factorial.Result() // 120
type Product[N Number] struct {
	name     Name
	identity N
	product  N
	mu       sync.Mutex
}

// NewProduct creates a Product accumulator with identity one.
func NewProduct[N Number](name Name) *Product[N] {
	return &Product[N]{name: name, identity: 1, product: 1}
}

// WithIdentity replaces the identity value. The running product is reset to
// the new identity, so call this before feeding elements.
func (p *Product[N]) WithIdentity(identity N) *Product[N] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.identity = identity
	p.product = identity
	return p
}

// Multiply multiplies the running product by a value.
func (p *Product[N]) Multiply(_ context.Context, value N) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.product *= value
}

// Add implements the Sink interface by delegating to Multiply.
func (p *Product[N]) Add(ctx context.Context, value N) {
	p.Multiply(ctx, value)
}

// Result returns the current product.
func (p *Product[N]) Result() N {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.product
}

// Reset restores the product to the identity value.
func (p *Product[N]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.product = p.identity
}

// Name returns the name of this accumulator.
func (p *Product[N]) Name() Name {
	return p.name
}
