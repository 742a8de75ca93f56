package cli

import (
	"fmt"
	"os"

	"github.com/ballerina-integrator/baltemplates/internal/branding"
	"github.com/ballerina-integrator/baltemplates/internal/config"
	"github.com/ballerina-integrator/baltemplates/internal/dispatch"
	"github.com/ballerina-integrator/baltemplates/internal/invoker"
	"github.com/ballerina-integrator/baltemplates/internal/logging"
	"github.com/ballerina-integrator/baltemplates/internal/prompt"
	"github.com/ballerina-integrator/baltemplates/internal/templates"
)

// session holds what every dispatching command needs: resolved settings,
// the log file, the template catalog and the tool invoker.
type session struct {
	settings config.Settings
	log      *logging.Logger
	catalog  *templates.Catalog
	invoker  *invoker.Invoker
}

func newSession() (*session, error) {
	settings := config.Current()

	level := settings.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if err := config.EnsureDir(); err != nil {
		return nil, err
	}
	log, err := logging.New(config.LogPath(), level)
	if err != nil {
		return nil, err
	}

	cat, err := templates.Load(settings.TemplatesFile)
	if err != nil {
		log.Close()
		return nil, err
	}

	inv := invoker.New(settings.ToolBinary, log)
	inv.EnvFile = settings.ToolEnvFile

	log.Debug("session started",
		"tool", settings.ToolBinary,
		"namespace", cat.NamespaceOr(settings.ToolNamespace),
		"templates", len(cat.Templates),
	)
	return &session{settings: settings, log: log, catalog: cat, invoker: inv}, nil
}

func (s *session) Close() {
	_ = s.log.Close()
}

// workspace is where the folder prompt opens.
func (s *session) workspace() string {
	if s.settings.WorkspaceDir != "" {
		return s.settings.WorkspaceDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func (s *session) dispatcher(p prompt.Prompter, host dispatch.Host) (*dispatch.Dispatcher, *prompt.Sequencer) {
	seq := prompt.NewSequencer(p, s.workspace(), s.log)
	d := dispatch.New(seq, s.invoker, host, s.namespace(),
		dispatch.WithLogger(s.log),
		dispatch.WithRemember(config.RememberTemplate),
	)
	return d, seq
}

// namespace prefers the catalog's own namespace over the configured one.
func (s *session) namespace() string {
	return s.catalog.NamespaceOr(s.settings.ToolNamespace)
}

func (s *session) template(id string) (templates.Template, error) {
	t, ok := s.catalog.Find(id)
	if !ok {
		return templates.Template{}, fmt.Errorf("unknown template %q (see '%s templates list')", id, branding.CLIName())
	}
	return t, nil
}
