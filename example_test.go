package hjarta_test

import (
	"errors"
	"fmt"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

// ServerConfig represents application server configuration.
// It implements both Defaulter and Validator interfaces from the config package.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Timeout int    `yaml:"timeout"`
}

// SetDefaults sets default values for the configuration.
func (c *ServerConfig) SetDefaults() bool {
	if c.Timeout != 0 {
		return false
	}

	c.Timeout = 30

	return true
}

// Validate validates the configuration.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

// ServerService is a service that depends on config.
type ServerService struct {
	Config *ServerConfig
	Stage  string
}

// Address returns the server address from config.
func (s *ServerService) Address() string {
	return fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
}

// Example_appWithConfigFile shows a configuration file being opened, checked
// and decoded before the services that depend on it are built.
func Example_appWithConfigFile() {
	// Step 1: Decode the "server" section of the file registered as "app".
	configModule := fx.Module("server-config",
		fx.Provide(
			fx.Annotate(
				config.Provider(new(ServerConfig), "server"),
				fx.ParamTags(`name:"app"`),
			),
		),
	)

	// Step 2: Build the service, asserting on the release stage while doing so.
	serviceModule := fx.Module("service",
		fx.Provide(
			fx.Annotate(
				func(cfg *ServerConfig, handle *config.Handle) (*ServerService, error) {
					err := handle.Evaluate("application.releaseStage").
						IsRequired().
						IsOneOf("Production", "Staging", "Test").
						Err()
					if err != nil {
						return nil, err
					}

					return &ServerService{
						Config: cfg,
						Stage:  handle.String("application.releaseStage", ""),
					}, nil
				},
				fx.ParamTags("", `name:"app"`),
			),
		),
	)

	var service *ServerService

	invokeModule := fx.Module("invoke",
		fx.Invoke(func(s *ServerService) {
			service = s
		}),
	)

	// Step 3: Create and start the App.
	app := hjarta.NewApp(
		hjarta.WithLogLevel("error"),
		hjarta.WithConfigFile("app", "testdata/config.yml"),
		hjarta.WithModules(configModule, serviceModule, invokeModule),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	fmt.Printf("Server address: %s\n", service.Address())
	fmt.Printf("Timeout: %d\n", service.Config.Timeout)
	fmt.Printf("Stage: %s\n", service.Stage)
	// Output:
	// Server address: api.example.com:9000
	// Timeout: 30
	// Stage: Production
}
