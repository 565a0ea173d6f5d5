// Package repl provides the interactive lookup session for otpowner.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yndnr/otpowner/internal/cli/output"
	"github.com/yndnr/otpowner/internal/core/domain"
	"github.com/yndnr/otpowner/internal/core/service"
	"github.com/yndnr/otpowner/internal/storage/registry"
	"github.com/yndnr/otpowner/internal/storage/source"
	"github.com/yndnr/otpowner/internal/telemetry/logger"
	"github.com/yndnr/otpowner/internal/telemetry/metric"
)

const defaultTable = "log.csv"

var (
	errQuit        = errors.New("repl: quit")
	errEOF         = errors.New("repl: end of input")
	errInterrupted = errors.New("repl: interrupted")
)

// Options configures a Session.
type Options struct {
	// TablePath is used without prompting when it names an existing file
	// or an s3:// object.
	TablePath string

	// DefaultTable answers an empty path prompt.
	DefaultTable string

	// Direction skips the mode prompt when set.
	Direction domain.Direction

	In      io.Reader
	Out     io.Writer
	Palette output.Palette

	Opener          source.Opener
	RegistryOptions []registry.Option
	Metrics         *metric.Registry
	Logger          logger.Logger

	// Watch logs a warning when a local table changes after loading.
	Watch bool
}

// Session is a single interactive run. It is not reusable.
type Session struct {
	opts Options
	id   string
	log  logger.Logger

	lines   chan string
	readErr error
	done    chan struct{}

	reg    *registry.Registry
	lookup *service.Lookup
	dir    domain.Direction
}

// New creates a session. Unset options fall back to stdin, stdout, the
// plain palette and a file/S3 source mux.
func New(opts Options) *Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Palette == nil {
		opts.Palette = output.Plain
	}
	if opts.Opener == nil {
		opts.Opener = source.NewMux()
	}
	if opts.DefaultTable == "" {
		opts.DefaultTable = defaultTable
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	id := domain.NewSessionID()
	return &Session{
		opts: opts,
		id:   id,
		log:  opts.Logger.With("session_id", id),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Registry returns the loaded table, or nil before loading.
func (s *Session) Registry() *registry.Registry {
	return s.reg
}

// Direction returns the chosen lookup direction.
func (s *Session) Direction() domain.Direction {
	return s.dir
}

// Run drives the session until an exit word, end of input or ctx
// cancellation. All three end with a farewell and a nil error.
func (s *Session) Run(ctx context.Context) error {
	s.startReader()
	defer close(s.done)

	err := s.run(logger.WithSessionID(ctx, s.id))
	switch {
	case errors.Is(err, errInterrupted):
		fmt.Fprintln(s.opts.Out)
		s.say(output.KindInfo, msgInterrupted)
		s.log.Info("session interrupted")
		return nil
	case errors.Is(err, errEOF):
		fmt.Fprintln(s.opts.Out)
		s.say(output.KindInfo, msgGoodbye)
		return nil
	case errors.Is(err, errQuit):
		s.say(output.KindInfo, msgGoodbye)
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	if err := s.loadTable(ctx); err != nil {
		return err
	}

	if s.opts.Watch {
		stop := s.watchTable(ctx)
		defer stop()
	}

	if err := s.chooseDirection(ctx); err != nil {
		return err
	}
	s.log.Info("session ready", "location", s.reg.Location(), "direction", string(s.dir))

	for {
		prompt := promptForward
		if s.dir == domain.Reverse {
			prompt = promptReverse
		}

		line, err := s.readLine(ctx, prompt)
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if exitWords[strings.ToLower(line)] {
			return errQuit
		}

		if s.dir == domain.Reverse {
			s.reverse(ctx, line)
		} else {
			s.forward(ctx, line)
		}
	}
}

func (s *Session) loadTable(ctx context.Context) error {
	location := strings.TrimSpace(s.opts.TablePath)
	if location != "" && !source.Exists(location) {
		s.log.Debug("table argument is not an existing file", "location", location)
		location = ""
	}

	for {
		if location == "" {
			answer, err := s.readLine(ctx, fmt.Sprintf(promptTablePath, s.opts.DefaultTable))
			if err != nil {
				return err
			}
			answer = cleanPath(answer)
			if answer != "" && exitWords[strings.ToLower(answer)] {
				return errQuit
			}
			location = answer
			if location == "" {
				location = s.opts.DefaultTable
			}
		}

		reg, err := service.LoadTable(ctx, s.opts.Opener, location, s.opts.Metrics, s.opts.RegistryOptions...)
		if err != nil {
			s.log.Debug("table load failed", "location", location, "error", err)
			s.say(output.KindError, fmt.Sprintf(msgLoadFailed, err))
			location = ""
			continue
		}

		s.reg = reg
		s.lookup = service.NewLookup(reg,
			service.WithRecorder(s.opts.Metrics),
			service.WithLogger(s.log),
		)
		s.say(output.KindInfo, fmt.Sprintf(msgLoaded, reg.Len(), location))
		return nil
	}
}

func (s *Session) chooseDirection(ctx context.Context) error {
	if s.opts.Direction != "" {
		s.dir = s.opts.Direction
		return nil
	}

	for {
		answer, err := s.readLine(ctx, promptMode)
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "", "1":
			s.dir = domain.Forward
			return nil
		case "2":
			s.dir = domain.Reverse
			return nil
		case "q", "quit", "exit":
			return errQuit
		}
		s.say(output.KindError, msgBadMode)
	}
}

func (s *Session) forward(ctx context.Context, line string) {
	res, err := s.lookup.Forward(ctx, line)
	if err != nil {
		s.say(output.KindError, msgBadOTP)
		return
	}

	fmt.Fprintln(s.opts.Out, s.opts.Palette(output.KindInfo, msgConverted)+res.Encoded)
	if res.Found {
		s.say(output.KindSuccess, fmt.Sprintf(msgOwner, res.Owner))
	} else {
		s.say(output.KindError, fmt.Sprintf(msgNoOwner, s.reg.Location()))
	}
	fmt.Fprintln(s.opts.Out)
}

func (s *Session) reverse(ctx context.Context, owner string) {
	res := s.lookup.Reverse(ctx, owner)
	if !res.Found {
		s.say(output.KindError, fmt.Sprintf(msgNoTokens, owner, s.reg.Location()))
	} else {
		s.say(output.KindSuccess, fmt.Sprintf(msgTokensFor, owner))
		for _, token := range res.Tokens {
			fmt.Fprintln(s.opts.Out, "  "+token)
		}
	}
	fmt.Fprintln(s.opts.Out)
}

func (s *Session) say(kind output.Kind, msg string) {
	fmt.Fprintln(s.opts.Out, s.opts.Palette(kind, msg))
}

// startReader feeds input lines to s.lines until input ends or the
// session is done.
func (s *Session) startReader() {
	s.lines = make(chan string)
	s.done = make(chan struct{})

	go func() {
		defer close(s.lines)
		sc := bufio.NewScanner(s.opts.In)
		for sc.Scan() {
			select {
			case s.lines <- sc.Text():
			case <-s.done:
				return
			}
		}
		s.readErr = sc.Err()
	}()
}

func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(s.opts.Out, s.opts.Palette(output.KindPrompt, prompt))

	select {
	case <-ctx.Done():
		return "", errInterrupted
	case line, ok := <-s.lines:
		if !ok {
			if s.readErr != nil {
				return "", fmt.Errorf("read input: %w", s.readErr)
			}
			return "", errEOF
		}
		return line, nil
	}
}

// cleanPath trims whitespace and the quotes some terminals add to
// dropped file paths.
func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return s
}
