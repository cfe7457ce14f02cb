package app

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/vk/nodock/internal/ctxlog"
	"github.com/vk/nodock/internal/render"
	"github.com/vk/nodock/internal/translate"
)

// Run translates the configured descriptor and emits the job spec. Nothing is
// written unless every stage succeeds.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx = ctxlog.With(ctx, "descriptor", a.config.DescriptorPath)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.DescriptorPath)
	if err != nil {
		return fmt.Errorf("failed to load descriptor: %w", err)
	}

	tree, err := translate.Translate(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to translate descriptor: %w", err)
	}

	out, err := render.Render(ctx, tree)
	if err != nil {
		return err
	}

	if err := a.emit(out); err != nil {
		return err
	}

	logger.Info("Job spec generated.", "job", model.General.Name, "output", a.destination(), "bytes", len(out))
	return nil
}

func (a *App) emit(out []byte) error {
	if a.config.OutputPath != "" {
		if err := afero.WriteFile(a.fs, a.config.OutputPath, out, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", a.config.OutputPath, err)
		}
		return nil
	}
	if _, err := a.outW.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (a *App) destination() string {
	if a.config.OutputPath != "" {
		return a.config.OutputPath
	}
	return "stdout"
}
