package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/jasonlvhit/gocron"
	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/path-calc/api"
	"github.com/a-bouts/path-calc/console"
	"github.com/a-bouts/path-calc/geom"
	"github.com/a-bouts/path-calc/xmpp"
)

type config struct {
	mode       string
	addr       string
	debug      bool
	cpuprofile bool
	statsEvery uint64
	settings   geom.Settings
	xmpp       xmpp.Config
}

func parseConfig(args []string) (config, error) {
	defaults := geom.DefaultSettings()

	fs := flag.NewFlagSet("path-calc", flag.ContinueOnError)
	c := config{}
	fs.String("config", "", "config file (optional)")
	fs.StringVar(&c.mode, "mode", "console", "console or server")
	fs.StringVar(&c.addr, "addr", ":8888", "server listen address")
	fs.BoolVar(&c.debug, "debug", false, "debug logging")
	fs.BoolVar(&c.cpuprofile, "cpuprofile", false, "write a cpu profile")
	fs.Uint64Var(&c.statsEvery, "stats-every", 1, "minutes between server stats logs")
	fs.Float64Var(&c.settings.Epsilon, "epsilon", defaults.Epsilon, "zero threshold for radius, curvature and output")
	fs.Float64Var(&c.settings.MinLead, "min-lead", defaults.MinLead, "smallest lead that moves")
	fs.Float64Var(&c.settings.MaxLead, "max-lead", defaults.MaxLead, "lead saturation")
	fs.Float64Var(&c.settings.DefaultRadius, "default-radius", defaults.DefaultRadius, "radius used when none is valid")
	fs.StringVar(&c.xmpp.Host, "xmpp-host", "", "")
	fs.StringVar(&c.xmpp.Jid, "xmpp-jid", "", "")
	fs.StringVar(&c.xmpp.Password, "xmpp-password", "", "")
	fs.StringVar(&c.xmpp.To, "xmpp-to", "", "")

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("PATH_CALC"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return c, err
	}
	if c.mode != "console" && c.mode != "server" {
		return c, fmt.Errorf("unknown mode %q", c.mode)
	}
	if c.statsEvery == 0 {
		return c, fmt.Errorf("stats-every must be positive")
	}
	return c, nil
}

func run(c config) error {
	e, err := geom.NewEngine(c.settings)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if c.cpuprofile {
		defer profile.Start(profile.NoShutdownHook).Stop()
	}

	if c.mode == "console" {
		return console.New(e, os.Stdin, os.Stdout).Run()
	}

	x := xmpp.Xmpp{Config: c.xmpp}
	if !x.Enabled() {
		log.Info("Xmpp notifications disabled")
	}
	s := api.NewServer(e, x)

	sched := gocron.NewScheduler()
	if err := s.ScheduleStats(sched, c.statsEvery); err != nil {
		log.Errorf("Stats job not scheduled : %s", err)
	} else {
		go sched.Start()
	}

	log.Infof("Start server on %s", c.addr)
	return http.ListenAndServe(c.addr, s.Router())
}

func main() {
	c, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	initLogger(c.debug)

	if err := run(c); err != nil {
		log.Fatal(err)
	}
}
