package solver

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Client implements Session over the text console of a running Fluent-style
// solver process.
type Client struct {
	con  *console
	proc *exec.Cmd
	log  *zap.Logger
}

var _ Session = (*Client)(nil)

func (c *Client) ReadCase(path string) error {
	c.log.Info("reading case", zap.String("file", path))
	_, err := c.con.command(fmt.Sprintf("/file/read-case %q", path))
	if err != nil {
		return fmt.Errorf("reading case %q: %w", path, err)
	}
	return nil
}

type zoneEntry struct {
	id   int
	name string
	typ  string
}

// Walls lists the wall zones of the loaded case along with their emissivity
// settings.
func (c *Client) Walls() ([]Wall, error) {
	zones, err := c.listZones()
	if err != nil {
		return nil, err
	}
	var walls []Wall
	for _, z := range zones {
		if z.typ != "wall" {
			continue
		}
		raw, err := c.wallEmissivity(z)
		if err != nil {
			return nil, err
		}
		walls = append(walls, Wall{Name: z.name, Emissivity: raw})
	}
	return walls, nil
}

func (c *Client) listZones() ([]zoneEntry, error) {
	reply, err := c.con.command("/define/boundary-conditions/list-zones")
	if err != nil {
		return nil, fmt.Errorf("listing boundary zones: %w", err)
	}
	return parseZoneTable(reply), nil
}

// The zone listing is a fixed-order table:
//
//	id   name          type        material
//	---- ------------- ----------- --------
//	5    wall-heater   wall        aluminum
//
// Header, rules and trailing chatter are skipped; a row is any line whose
// first field is an integer.
func parseZoneTable(reply string) []zoneEntry {
	var zones []zoneEntry
	for _, line := range strings.Split(reply, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		zones = append(zones, zoneEntry{id: id, name: fields[1], typ: fields[2]})
	}
	return zones
}

func (c *Client) wallEmissivity(z zoneEntry) (RawValue, error) {
	reply, err := c.con.command(fmt.Sprintf("(%%bc-setting %d 'in-emiss)", z.id))
	if err != nil {
		return RawValue{}, fmt.Errorf("querying emissivity of %q: %w", z.name, err)
	}
	return ParseRawValue(lastToken(reply)), nil
}

// lastToken strips the command echo: the value is the final whitespace
// separated token of the reply.
func lastToken(reply string) string {
	fields := strings.Fields(reply)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// ParseRawValue classifies a console value token. The shape of the token
// carries the type: a bare integer, a decimal float, a quoted string naming
// a named expression, or #f when the wall has no emissivity setting.
func ParseRawValue(token string) RawValue {
	switch {
	case token == "" || token == "#f" || token == "()":
		return RawValue{Kind: KindAbsent}
	case strings.HasPrefix(token, "\"") && strings.HasSuffix(token, "\"") && len(token) >= 2:
		return RefValue(token[1 : len(token)-1])
	}
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return IntValue(n)
	}
	if x, err := strconv.ParseFloat(token, 64); err == nil {
		return FloatValue(x)
	}
	// Unquoted symbol, still a reference by name. Normalization rejects it if
	// no such expression exists.
	return RefValue(token)
}

func (c *Client) HasNamedExpression(name string) (bool, error) {
	reply, err := c.con.command("/define/named-expressions/list")
	if err != nil {
		return false, fmt.Errorf("listing named expressions: %w", err)
	}
	for _, n := range parseExpressionNames(reply) {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// parseExpressionNames pulls names out of the expression listing, one
// expression per line, name first.
func parseExpressionNames(reply string) []string {
	var names []string
	for _, line := range strings.Split(reply, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name := strings.TrimSuffix(fields[0], ":")
		if name == "" || strings.HasPrefix(name, "/") || strings.HasPrefix(name, "-") {
			continue
		}
		names = append(names, name)
	}
	return names
}

func (c *Client) NamedExpressionValue(name string) (float64, error) {
	reply, err := c.con.command(fmt.Sprintf("/define/named-expressions/compute %q", name))
	if err != nil {
		return 0, fmt.Errorf("computing named expression %q: %w", name, err)
	}
	x, ok := lastFloat(reply)
	if !ok {
		return 0, fmt.Errorf("named expression %q: no numeric value in reply %q", name, reply)
	}
	return x, nil
}

// lastFloat returns the last token of the reply that parses as a number.
// Replies look like `emiss-ramp = 0.85 []`.
func lastFloat(reply string) (float64, bool) {
	fields := strings.Fields(reply)
	for i := len(fields) - 1; i >= 0; i-- {
		if x, err := strconv.ParseFloat(fields[i], 64); err == nil {
			return x, true
		}
	}
	return 0, false
}

func (c *Client) AddNamedExpression(name, definition string) error {
	c.log.Info("defining named expression", zap.String("name", name))
	_, err := c.con.command(fmt.Sprintf(
		"/define/named-expressions/add %q definition %q quit", name, definition))
	if err != nil {
		return fmt.Errorf("adding named expression %q: %w", name, err)
	}
	return nil
}

func (c *Client) AddBoundaryRegister(name string, walls []string) error {
	c.log.Info("creating cell register",
		zap.String("name", name),
		zap.Strings("walls", walls))
	_, err := c.con.command(fmt.Sprintf(
		"/solve/cell-registers/add %s type boundary boundary-list (%s) quit quit",
		name, strings.Join(walls, " ")))
	if err != nil {
		return fmt.Errorf("adding cell register %q: %w", name, err)
	}
	return nil
}

func (c *Client) BoundaryConditionsActive() (bool, error) {
	zones, err := c.listZones()
	if err != nil {
		return false, err
	}
	return len(zones) > 0, nil
}

func (c *Client) DataAvailable() (bool, error) {
	reply, err := c.con.command(`(if (data-valid?) (display "yes") (display "no"))`)
	if err != nil {
		return false, fmt.Errorf("querying data availability: %w", err)
	}
	return strings.Contains(reply, "yes"), nil
}

func (c *Client) Initialize() error {
	c.log.Info("initializing solution")
	if _, err := c.con.command("/solve/initialize/initialize-flow yes"); err != nil {
		return fmt.Errorf("initializing solution: %w", err)
	}
	return nil
}

func (c *Client) CreateContour(name string, cfg ContourConfig) error {
	c.log.Info("creating contour", zap.String("name", name), zap.String("field", cfg.Field))
	_, err := c.con.command(contourCommand(name, cfg))
	if err != nil {
		return fmt.Errorf("creating contour %q: %w", name, err)
	}
	return nil
}

func contourCommand(name string, cfg ContourConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/display/objects/create contour %s", name)
	fmt.Fprintf(&b, " field %q", cfg.Field)
	fmt.Fprintf(&b, " filled? %s", yesNo(cfg.Filled))
	fmt.Fprintf(&b, " surfaces-list %s ()", strings.Join(cfg.Surfaces, " "))
	fmt.Fprintf(&b, " node-values? %s", yesNo(cfg.NodeValues))
	fmt.Fprintf(&b, " coloring option %s", cfg.Coloring)
	cm := cfg.ColorMap
	fmt.Fprintf(&b, " color-map size %d color %s log-scale? %s format %q length %g user-skip %d quit",
		cm.Size, cm.Color, yesNo(cm.LogScale), cm.Format, cm.Length, cm.UserSkip)
	b.WriteString(" quit")
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func (c *Client) DisplayContour(name string) error {
	c.log.Info("displaying contour", zap.String("name", name))
	if _, err := c.con.command(fmt.Sprintf("/display/objects/display %s", name)); err != nil {
		return fmt.Errorf("displaying contour %q: %w", name, err)
	}
	return nil
}

// Exit asks the solver to shut down and reaps the process.
func (c *Client) Exit() error {
	if _, err := fmt.Fprintln(c.con.in, "exit yes"); err != nil {
		_ = c.proc.Process.Kill()
		return c.proc.Wait()
	}
	return c.proc.Wait()
}
