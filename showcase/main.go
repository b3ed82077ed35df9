// Package main provides the universe demo application.
// It demonstrates idiomatic patterns for managing application state with
// a Universe: typed messages, subscriptions, derived values, background
// dispatch, and env-configured instrumentation.
package main

import (
	"fmt"
	"log"

	"github.com/go-drift/universe/pkg/derived"
	"github.com/go-drift/universe/pkg/observe"
	"github.com/go-drift/universe/pkg/universe"
)

// cartOp enumerates the mutations the cart supports.
type cartOp int

const (
	opAddItem cartOp = iota
	opRemoveItem
	opApplyCoupon
)

// cartMsg is one cart mutation. Exactly one dispatch consumes it.
type cartMsg struct {
	op       cartOp
	sku      string
	price    int
	discount int
}

func addItem(sku string, price int) cartMsg {
	return cartMsg{op: opAddItem, sku: sku, price: price}
}

func removeItem(sku string) cartMsg {
	return cartMsg{op: opRemoveItem, sku: sku}
}

func applyCoupon(discount int) cartMsg {
	return cartMsg{op: opApplyCoupon, discount: discount}
}

// cart is the single state value owned by the Universe.
type cart struct {
	prices   map[string]int
	discount int
}

func newCart() *cart {
	return &cart{prices: make(map[string]int)}
}

func (c *cart) HandleMessage(msg cartMsg) {
	switch msg.op {
	case opAddItem:
		c.prices[msg.sku] = msg.price
	case opRemoveItem:
		delete(c.prices, msg.sku)
	case opApplyCoupon:
		c.discount = msg.discount
	}
}

func (c *cart) total() int {
	sum := 0
	for _, price := range c.prices {
		sum += price
	}
	sum -= c.discount
	if sum < 0 {
		return 0
	}
	return sum
}

func main() {
	// Instrumentation is configured through UNIVERSE_OBSERVE_* variables;
	// try UNIVERSE_OBSERVE_LEVEL=DEBUG to watch every dispatch.
	cfg, err := observe.FromEnv()
	if err != nil {
		log.Fatalf("load observe config: %v", err)
	}
	observer := cfg.Build(nil)

	u := universe.New[*cart, cartMsg](newCart(),
		universe.WithName("cart"),
		universe.WithObserver(observer),
	)

	// A derived value recomputes after each dispatch and only notifies
	// when the selection changed.
	itemCount := derived.From(u, func(c *cart) int { return len(c.prices) })
	defer itemCount.Dispose()

	cancel := itemCount.AddListener(func(n int) {
		fmt.Printf("cart now holds %d item(s)\n", n)
	})
	defer cancel()

	u.Dispatch(addItem("boots", 79))
	u.Dispatch(addItem("socks", 12))
	u.Dispatch(removeItem("socks"))

	// Applying a coupon changes the total but not the item count, so the
	// listener above stays quiet.
	u.Dispatch(applyCoupon(10))

	// A Queue serializes posts from other goroutines onto one dispatcher.
	q := universe.NewQueue(u, 8)
	posted := make(chan struct{})
	go func() {
		defer close(posted)
		q.Post(addItem("jacket", 120))
		q.Post(addItem("gloves", 15))
	}()
	<-posted
	q.Close()

	total := universe.Get(u, func(c *cart) int { return c.total() })
	fmt.Printf("checkout total: %d\n", total)
}
