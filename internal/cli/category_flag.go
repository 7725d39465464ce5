package cli

import (
	"strings"

	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/spf13/pflag"
)

// categoryFlag is a pflag.Value restricted to the known game categories.
type categoryFlag struct {
	value domain.GameType
	set   bool
}

var _ pflag.Value = (*categoryFlag)(nil)

func (c *categoryFlag) String() string { return string(c.value) }

func (c *categoryFlag) Set(s string) error {
	g, err := domain.ParseGameType(s)
	if err != nil {
		return err
	}
	c.value = g
	c.set = true
	return nil
}

func (c *categoryFlag) Type() string { return "category" }

func categoryUsage() string {
	names := make([]string, 0, len(domain.AllGameTypes()))
	for _, g := range domain.AllGameTypes() {
		names = append(names, string(g))
	}
	return "Game category (" + strings.Join(names, "|") + ")"
}
