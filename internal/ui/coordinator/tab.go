package coordinator

import (
	"context"

	"github.com/bnema/dozer/internal/application/usecase"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/bnema/dozer/internal/logging"
)

// OpenTab registers and loads a tab and adds it to the tab bar.
// The first tab opened becomes the foreground tab.
func (c *LifecycleCoordinator) OpenTab(ctx context.Context, input usecase.OpenTabInput) (entity.TabID, error) {
	var (
		id  entity.TabID
		err error
	)
	if invokeErr := c.loop.Invoke(ctx, func() {
		id, err = c.tabsUC.Open(ctx, input)
		if err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to open tab")
			return
		}
		view, viewErr := c.tabsUC.View(id)
		if viewErr != nil {
			err = viewErr
			return
		}
		c.tabBar.AddTab(id, view.Label)
		if c.tabBar.Foreground() == "" {
			c.tabBar.SetForeground(id)
		}
	}); invokeErr != nil {
		return "", invokeErr
	}
	return id, err
}

// CloseTab closes a tab and removes it from the tab bar.
func (c *LifecycleCoordinator) CloseTab(ctx context.Context, id entity.TabID) error {
	var err error
	if invokeErr := c.loop.Invoke(ctx, func() {
		if err = c.tabsUC.Close(ctx, id); err != nil {
			return
		}
		c.tabBar.RemoveTab(id)
	}); invokeErr != nil {
		return invokeErr
	}
	return err
}

// SelectTab brings a tab to the foreground, resuming it when suspended.
func (c *LifecycleCoordinator) SelectTab(ctx context.Context, id entity.TabID) error {
	var err error
	if invokeErr := c.loop.Invoke(ctx, func() {
		if err = c.tabsUC.Select(ctx, id); err != nil {
			return
		}
		c.tabBar.SetForeground(id)
	}); invokeErr != nil {
		return invokeErr
	}
	return err
}

// PinTab marks or unmarks a tab as pinned.
func (c *LifecycleCoordinator) PinTab(ctx context.Context, id entity.TabID, pinned bool) error {
	var err error
	if invokeErr := c.loop.Invoke(ctx, func() {
		err = c.tabsUC.Pin(ctx, id, pinned)
	}); invokeErr != nil {
		return invokeErr
	}
	return err
}

// Tabs lists every tab in creation order.
func (c *LifecycleCoordinator) Tabs(ctx context.Context) ([]usecase.TabView, error) {
	var views []usecase.TabView
	err := c.loop.Invoke(ctx, func() { views = c.tabsUC.List() })
	return views, err
}
