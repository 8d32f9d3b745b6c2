package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shibukawa/configdir"
	"go.uber.org/zap"
)

const logsDirectory = "logs"

const VendorName = "scrawl-party"
const ApplicationName = "scrawl"

// Transport tuning. The coordinator owns round timers; these only shape
// the client's own connection and stroke throughput.
const MaxRetries = 3
const RetryDelay = 1 * time.Second
const StrokeSampleInterval = 50 * time.Millisecond

const DefaultServerURL = "ws://localhost:8000/ws"
const ServerURLEnvVar = "SCRAWL_SERVER_URL"

const UserColor = lipgloss.Color("#7D56F4")
const ForegroundShadeColor = lipgloss.Color("#555555")

var serverURL string
var playerName string
var initialAction string
var debug bool
var anonymous bool

var Logger *zap.Logger
var LogFilePath string

func SetupLogger() {
	var c zap.Config
	if debug {
		c = zap.NewDevelopmentConfig()
	} else {
		c = zap.NewProductionConfig()
	}

	LogFilePath = createLogFile()
	c.OutputPaths = []string{LogFilePath}
	c.Development = false
	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	Logger = logger
}

func createLogFile() string {
	name := fmt.Sprintf("scrawl-%s.log", time.Now().UTC().Format(time.RFC3339))
	name = strings.Replace(name, ":", "-", -1)

	configDirs := configdir.New(VendorName, ApplicationName)
	folders := configDirs.QueryFolders(configdir.Global)
	path := filepath.Join(folders[0].Path, logsDirectory, name)

	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		panic(err)
	}

	if _, err := os.Create(path); err != nil {
		panic(err)
	}

	return path
}

func ParseArguments() {
	flag.StringVar(&playerName, "name", "", "Player name")
	flag.StringVar(&serverURL, "url", defaultServerURL(), "Coordinator websocket URL")
	flag.BoolVar(&debug, "debug", false, "Show debug info")
	flag.BoolVar(&anonymous, "anonymous", false, "Do not store player name on disk")
	flag.Parse()

	initialAction = strings.Join(flag.Args(), " ")
}

func defaultServerURL() string {
	if url := os.Getenv(ServerURLEnvVar); url != "" {
		return url
	}
	return DefaultServerURL
}

func GeneratePlayerName() string {
	return fmt.Sprintf("player-%s", uuid.NewString()[:8])
}

func ServerURL() string {
	return serverURL
}

func PlayerName() string {
	return playerName
}

func InitialAction() string {
	return initialAction
}

func Debug() bool {
	return debug
}

func Anonymous() bool {
	return anonymous
}
