// Package main provides the CLI entrypoint for cms-mapper.
//
// cms-mapper loads a YAML site fixture and prints the editor models the
// mapping layer produces for it:
//   - display prints the mapped model of one item as JSON
//   - tabs prints the tabs of a document variant
//   - compositions lists the compositions available to a content type
//   - check maps everything and reports degraded output
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"cms-mapper/internal/config"
	"cms-mapper/internal/editors"
	"cms-mapper/internal/logging"
	"cms-mapper/internal/maps"
	"cms-mapper/internal/mapping"
	"cms-mapper/internal/services"
	"cms-mapper/internal/sqlstore"
)

// errCheckFailed is returned by check when errors were found.
var errCheckFailed = errors.New("check failed")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}

		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "cms-mapper - maps CMS entities to editor models")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: cms-mapper <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  display       print the editor model of an item (-kind, -id, -culture)")
	fmt.Fprintln(w, "  tabs          print the tabs of a document variant (-id, -culture)")
	fmt.Fprintln(w, "  compositions  list compositions available to a content type (-alias, -kind)")
	fmt.Fprintln(w, "  check         map every item and report warnings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Every command takes -fixture <file> and -config <file>.")
}

// env is what every command needs.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	fixture  *Fixture
	store    *services.MemoryStore
	registry *mapping.Registry
	types    services.ContentTypeService
	out      io.Writer
	close    func()
}

func commonFlags(fs *flag.FlagSet) (fixture, configPath *string) {
	fixture = fs.String("fixture", "site.yaml", "site fixture file")
	configPath = fs.String("config", "", "config file (optional)")

	return fixture, configPath
}

func setup(fixturePath, configPath string, out io.Writer) (*env, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cfg.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	reg := editors.Default()
	if cfg.EditorsFile != "" {
		reg, err = editors.LoadFile(cfg.EditorsFile)
		if err != nil {
			return nil, err
		}
	}

	fixture, err := LoadFixture(fixturePath)
	if err != nil {
		return nil, err
	}

	store, err := fixture.Store(reg)
	if err != nil {
		return nil, err
	}

	e := &env{
		cfg: cfg, logger: logger, fixture: fixture, store: store, types: store, out: out,
		close: func() { _ = logger.Sync() },
	}

	if cfg.Database.DSN != "" {
		db, err := sqlstore.Open(cfg.Database.DSN, cfg.Database.MaxOpenConns)
		if err != nil {
			return nil, err
		}

		logger.Info("content types are read from the database")

		e.types = sqlstore.NewContentTypeRepository(db, logger)
		e.close = func() {
			db.Close()
			_ = logger.Sync()
		}
	}

	e.registry, err = maps.NewRegistry(maps.Services{
		Content:        store,
		ContentTypes:   e.types,
		DataTypes:      store,
		Files:          store,
		Users:          store,
		Text:           store,
		Languages:      store,
		Identity:       store,
		Editors:        reg,
		BackOfficePath: cfg.BackOfficePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build mapping registry: %w", err)
	}

	return e, nil
}

func (e *env) context(opts ...mapping.Option) *mapping.Context {
	return e.registry.NewContext(append(opts, mapping.WithLogger(e.logger))...)
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		printUsage(out)
		return nil
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(out)
	fixture, configPath := commonFlags(fs)

	switch args[0] {
	case "display":
		kind := fs.String("kind", "content", "content, media, document-type, media-type, member-type, data-type or user")
		id := fs.Int("id", 0, "item id (required)")
		culture := fs.String("culture", "", "culture to map")
		user := fs.Int("user", 0, "current user id")

		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		if *id == 0 {
			fs.Usage()
			return errors.New("-id is required")
		}

		e, err := setup(*fixture, *configPath, out)
		if err != nil {
			return err
		}
		defer e.close()

		return e.display(*kind, *id, *culture, *user)
	case "tabs":
		id := fs.Int("id", 0, "document id (required)")
		culture := fs.String("culture", "", "culture of the variant")

		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		if *id == 0 {
			fs.Usage()
			return errors.New("-id is required")
		}

		e, err := setup(*fixture, *configPath, out)
		if err != nil {
			return err
		}
		defer e.close()

		return e.tabs(*id, *culture)
	case "compositions":
		alias := fs.String("alias", "", "content type alias (required)")
		kind := fs.String("kind", "document", "document, media or member")

		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		if *alias == "" {
			fs.Usage()
			return errors.New("-alias is required")
		}

		e, err := setup(*fixture, *configPath, out)
		if err != nil {
			return err
		}
		defer e.close()

		return e.compositions(*alias, *kind)
	case "check":
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		e, err := setup(*fixture, *configPath, out)
		if err != nil {
			return err
		}
		defer e.close()

		return e.check()
	case "help", "-h", "-help", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
