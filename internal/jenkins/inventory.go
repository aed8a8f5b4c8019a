/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package jenkins

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Inventory lists the views and jobs of server, each sorted by name.
func Inventory(ctx context.Context, server Server) (views []Item, jobs []Item, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		views, err = server.Views(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = server.Jobs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	sortItems(views)
	sortItems(jobs)
	return views, jobs, nil
}

func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
}
