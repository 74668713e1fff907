package config

import (
	"flag"
)

// Flags binds command-line flags to a Config. Only flags given on the
// command line override the file, so a flag left at its default never
// masks a value from the config file.
type Flags struct {
	fs     *flag.FlagSet
	path   string
	debug  bool
	parsed Config
	apply  map[string]func(dst, src *Config)
}

// NewFlags registers the common flags on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs, parsed: *Default(), apply: map[string]func(dst, src *Config){}}
	fs.StringVar(&f.path, "config", "", "Path to config file")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging")

	f.str("log-level", &f.parsed.Logging.Level, "Log level (debug, info, warn, error)",
		func(d, s *Config) { d.Logging.Level = s.Logging.Level })
	f.str("log-file", &f.parsed.Logging.LogFile, "Also log to this file (rotated)",
		func(d, s *Config) { d.Logging.LogFile = s.Logging.LogFile })
	f.str("o", &f.parsed.Output.Path, "Output file",
		func(d, s *Config) { d.Output.Path = s.Output.Path })
	f.str("backend", &f.parsed.Output.Backend, "Host backend name",
		func(d, s *Config) { d.Output.Backend = s.Output.Backend })
	f.boolean("dump", &f.parsed.Output.Dump, "Print the command program",
		func(d, s *Config) { d.Output.Dump = s.Output.Dump })
	return f
}

// SphereFlags registers the sphere script flags.
func (f *Flags) SphereFlags() *Flags {
	s := &f.parsed.Sphere
	f.float("radius", &s.Radius, "Sphere radius in pixels",
		func(d, s *Config) { d.Sphere.Radius = s.Sphere.Radius })
	f.float("light", &s.LightAngle, "Lighting angle in degrees",
		func(d, s *Config) { d.Sphere.LightAngle = s.Sphere.LightAngle })
	f.boolean("shadow", &s.Shadow, "Cast a shadow",
		func(d, s *Config) { d.Sphere.Shadow = s.Sphere.Shadow })
	f.fs.TextVar(&s.Background, "bg", s.Background, "Background color")
	f.apply["bg"] = func(d, s *Config) { d.Sphere.Background = s.Sphere.Background }
	f.fs.TextVar(&s.Color, "fg", s.Color, "Sphere color")
	f.apply["fg"] = func(d, s *Config) { d.Sphere.Color = s.Sphere.Color }
	f.boolean("display", &f.parsed.Output.Display, "Show the result in a window",
		func(d, s *Config) { d.Output.Display = s.Output.Display })
	return f
}

// ClothifyFlags registers the clothify script flags.
func (f *Flags) ClothifyFlags() *Flags {
	c := &f.parsed.Clothify
	f.integer("x-blur", &c.XBlur, "Horizontal blur",
		func(d, s *Config) { d.Clothify.XBlur = s.Clothify.XBlur })
	f.integer("y-blur", &c.YBlur, "Vertical blur",
		func(d, s *Config) { d.Clothify.YBlur = s.Clothify.YBlur })
	f.integer("azimuth", &c.Azimuth, "Bump map azimuth",
		func(d, s *Config) { d.Clothify.Azimuth = s.Clothify.Azimuth })
	f.integer("elevation", &c.Elevation, "Bump map elevation",
		func(d, s *Config) { d.Clothify.Elevation = s.Clothify.Elevation })
	f.integer("depth", &c.Depth, "Bump map depth",
		func(d, s *Config) { d.Clothify.Depth = s.Clothify.Depth })
	f.integer("width", &c.Width, "Target width",
		func(d, s *Config) { d.Clothify.Width = s.Clothify.Width })
	f.integer("height", &c.Height, "Target height",
		func(d, s *Config) { d.Clothify.Height = s.Clothify.Height })
	f.fs.TextVar(&c.Background, "bg", c.Background, "Noise background color")
	f.apply["bg"] = func(d, s *Config) { d.Clothify.Background = s.Clothify.Background }
	return f
}

func (f *Flags) str(name string, p *string, usage string, a func(d, s *Config)) {
	f.fs.StringVar(p, name, *p, usage)
	f.apply[name] = a
}

func (f *Flags) boolean(name string, p *bool, usage string, a func(d, s *Config)) {
	f.fs.BoolVar(p, name, *p, usage)
	f.apply[name] = a
}

func (f *Flags) float(name string, p *float64, usage string, a func(d, s *Config)) {
	f.fs.Float64Var(p, name, *p, usage)
	f.apply[name] = a
}

func (f *Flags) integer(name string, p *int, usage string, a func(d, s *Config)) {
	f.fs.IntVar(p, name, *p, usage)
	f.apply[name] = a
}

// Parse parses args and loads the configuration with priority
// defaults < file < flags.
func (f *Flags) Parse(args []string) (*Config, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	cfg, err := Load(f.path)
	if err != nil {
		return nil, err
	}
	f.fs.Visit(func(fl *flag.Flag) {
		if a, ok := f.apply[fl.Name]; ok {
			a(cfg, &f.parsed)
		}
	})
	if f.debug {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// Args returns the non-flag arguments left after Parse.
func (f *Flags) Args() []string { return f.fs.Args() }
