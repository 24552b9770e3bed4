package main

import (
	"errors"
	"io"

	"github.com/npratt/pathviz/internal/config"
	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/layout"
)

// errInvalid is returned by check when validation finds problems.
var errInvalid = errors.New("validation failed")

// runCheck validates the curriculum and tier table named by cfg, printing
// every finding to w.
func runCheck(w io.Writer, cfg *config.Config) error {
	c, err := curriculum.Load(cfg.Paths.Curriculum)
	if err != nil {
		return err
	}
	table, err := layout.LoadTable(cfg.Paths.Layout)
	if err != nil {
		return err
	}
	if writeProblems(w, c.Validate(), table.Validate(c)) > 0 {
		return errInvalid
	}
	return nil
}
