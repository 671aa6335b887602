// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/workers"
	"github.com/MKhiriev/go-storefront/models"
)

type App struct {
	registry  *store.Registry
	workers   *workers.Workers
	dashboard Dashboard

	mu  sync.Mutex
	out io.Writer

	logger *logger.Logger
}

// NewApp creates the client runtime. dashboard may be nil, in which case the
// dashboard command fails with ErrNoDashboard.
func NewApp(registry *store.Registry, ws *workers.Workers, dashboard Dashboard, out io.Writer, logger *logger.Logger) *App {
	return &App{
		registry:  registry,
		workers:   ws,
		dashboard: dashboard,
		out:       out,
		logger:    logger,
	}
}

// Run implements Client. Every command first refreshes the stores the way a
// page navigation does, then performs its operation and prints the result.
// The script stops at the first failing command.
func (a *App) Run(ctx context.Context, args []string) error {
	script, err := parseCommands(args)
	if err != nil {
		return err
	}

	for _, inv := range script {
		a.navigate(ctx)

		a.logger.Debug().Str("command", inv.name).Str("id", inv.id).Msg("running command")
		if err = inv.run(a, ctx, inv.id); err != nil {
			return fmt.Errorf("%s: %w", inv.name, err)
		}
	}
	return nil
}

// navigate runs the refresh every view performs on entry. Its failures are
// recorded in the stores' status and only logged here.
func (a *App) navigate(ctx context.Context) {
	if err := a.registry.Refresh(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("refresh failed")
	}
}

func (a *App) status(_ context.Context, _ string) error {
	a.printUser()
	for _, c := range []*store.Collection[string]{a.registry.Wishlist.Collection, a.registry.Cart.Collection, a.registry.Bought} {
		line := fmt.Sprintf("%s: %d item(s)", c.Name(), c.Len())
		if msg := c.LastError(); msg != "" {
			line += " (" + msg + ")"
		}
		a.println(line)
	}
	return nil
}

func (a *App) login(ctx context.Context, _ string) error {
	if err := a.registry.Identity.SignInWithGoogle(ctx); err != nil {
		return err
	}
	a.navigate(ctx)
	a.printUser()
	return nil
}

func (a *App) logout(_ context.Context, _ string) error {
	a.registry.Identity.SignOut()
	a.printUser()
	return nil
}

// checkout buys the whole cart and prints the reloaded Cart and Bought.
func (a *App) checkout(ctx context.Context, _ string) error {
	err := a.registry.Checkout(ctx)
	a.printCollection(a.registry.Cart.Collection)
	a.printCollection(a.registry.Bought)
	return err
}

// watch prints every store event until ctx is cancelled while the refresh
// job keeps the stores current.
func (a *App) watch(ctx context.Context, _ string) error {
	cancel := a.registry.Subscribe(a.printEvent)
	defer cancel()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.println("watching for changes, interrupt to stop")
	<-ctx.Done()
	return nil
}

func (a *App) runDashboard(ctx context.Context, _ string) error {
	if a.dashboard == nil {
		return ErrNoDashboard
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	return a.dashboard.Run(ctx)
}

func (a *App) printEvent(e store.Event) {
	switch e.Kind {
	case store.EventUser:
		a.printUser()
	case store.EventMembers:
		if c, ok := a.registry.Collection(models.Collection(e.Source)); ok {
			a.printCollection(c)
		}
	case store.EventError:
		if c, ok := a.registry.Collection(models.Collection(e.Source)); ok && c.LastError() != "" {
			a.println(c.Name() + " error: " + c.LastError())
		}
	}
}

func (a *App) printUser() {
	user, ok := a.registry.Identity.User()
	if !ok {
		a.println("user: not signed in")
		return
	}
	a.println(fmt.Sprintf("user: %s <%s>", user.Name, user.Email))
}

func (a *App) printCollection(c *store.Collection[string]) {
	members := c.Members()
	slices.Sort(members)

	line := c.Name() + ": "
	if len(members) == 0 {
		line += "(empty)"
	} else {
		line += strings.Join(members, ", ")
	}
	a.println(line)

	if msg := c.LastError(); msg != "" {
		a.println(c.Name() + " error: " + msg)
	}
}

func (a *App) println(line string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintln(a.out, line)
}
