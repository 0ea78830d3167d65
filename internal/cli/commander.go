package cli

// Option is one recognized flag. After Commander.Resolve it holds the tokens
// that followed the flag up to the next recognized flag or the end of input.
type Option struct {
	Name    string
	aliases []string
	matched string
	args    []string
}

// Matches reports whether token equals one of the option's aliases exactly.
func (o *Option) Matches(token string) bool {
	for _, alias := range o.aliases {
		if alias == token {
			return true
		}
	}
	return false
}

// Present reports whether the flag appeared on the command line.
func (o *Option) Present() bool {
	return o.matched != ""
}

// Flag returns the alias that matched, or "" when the flag was absent.
func (o *Option) Flag() string {
	return o.matched
}

// Args returns the tokens assigned to the option.
func (o *Option) Args() []string {
	return o.args
}

// Commander matches tokens against registered options. A matched flag
// greedily takes every following token until the next matched flag.
type Commander struct {
	options []*Option
	residue []string
}

// NewCommander returns a Commander with no options.
func NewCommander() *Commander {
	return &Commander{}
}

// AddOption registers an option triggered by any of aliases.
func (c *Commander) AddOption(name string, aliases ...string) *Option {
	opt := &Option{Name: name, aliases: aliases}
	c.options = append(c.options, opt)
	return opt
}

// Resolve assigns tokens to options. Tokens before the first recognized flag
// become the residue. A flag given more than once keeps the tokens of its
// last occurrence. Any previous result is discarded first.
func (c *Commander) Resolve(tokens []string) {
	c.residue = nil
	for _, opt := range c.options {
		opt.matched, opt.args = "", nil
	}

	var cur *Option
	var collected []string
	flush := func() {
		if cur == nil {
			c.residue = collected
		} else {
			cur.args = collected
		}
	}

	for _, token := range tokens {
		opt := c.lookup(token)
		if opt == nil {
			collected = append(collected, token)
			continue
		}
		flush()
		cur = opt
		cur.matched = token
		collected = nil
	}
	flush()
}

// Residue returns the tokens that appeared before any recognized flag.
func (c *Commander) Residue() []string {
	return c.residue
}

func (c *Commander) lookup(token string) *Option {
	for _, opt := range c.options {
		if opt.Matches(token) {
			return opt
		}
	}
	return nil
}
