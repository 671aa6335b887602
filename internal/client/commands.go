// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

type command struct {
	name    string
	needsID bool
	run     func(a *App, ctx context.Context, id string) error
}

// invocation is a parsed command with its argument.
type invocation struct {
	command
	id string
}

var commands = map[string]command{}

func register(c command) {
	commands[c.name] = c
}

func init() {
	register(command{name: "status", run: (*App).status})
	register(command{name: "login", run: (*App).login})
	register(command{name: "logout", run: (*App).logout})
	register(command{name: "watch", run: (*App).watch})
	register(command{name: "dashboard", run: (*App).runDashboard})
	register(command{name: "checkout", run: (*App).checkout})

	for _, c := range []models.Collection{models.CollectionWishlist, models.CollectionCart, models.CollectionBought} {
		register(command{name: c.String(), run: listCommand(c)})
	}

	for _, c := range []models.Collection{models.CollectionWishlist, models.CollectionCart} {
		register(command{name: "toggle-" + c.String(), needsID: true, run: mutateCommand(c, (*store.MutableCollection[string]).Toggle)})
		register(command{name: "add-" + c.String(), needsID: true, run: mutateCommand(c, (*store.MutableCollection[string]).Add)})
		register(command{name: "remove-" + c.String(), needsID: true, run: mutateCommand(c, (*store.MutableCollection[string]).Remove)})
	}
}

// parseCommands turns args into a script. An empty script means "status".
func parseCommands(args []string) ([]invocation, error) {
	if len(args) == 0 {
		return []invocation{{command: commands["status"]}}, nil
	}

	var script []invocation
	for i := 0; i < len(args); i++ {
		c, ok := commands[args[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, args[i])
		}

		inv := invocation{command: c}
		if c.needsID {
			if i+1 >= len(args) || args[i+1] == "" {
				return nil, fmt.Errorf("%w: %s", ErrMissingID, c.name)
			}
			i++
			inv.id = args[i]
		}
		script = append(script, inv)
	}
	return script, nil
}

func listCommand(c models.Collection) func(a *App, ctx context.Context, id string) error {
	return func(a *App, _ context.Context, _ string) error {
		coll, _ := a.registry.Collection(c)
		a.printCollection(coll)
		return nil
	}
}

type mutation func(m *store.MutableCollection[string], ctx context.Context, id string) error

func mutateCommand(c models.Collection, op mutation) func(a *App, ctx context.Context, id string) error {
	return func(a *App, ctx context.Context, id string) error {
		coll, _ := a.registry.Mutable(c)
		err := op(coll, ctx, id)
		a.printCollection(coll.Collection)
		return err
	}
}
