package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafal-rumanek/movehub/internal/ble"
	"github.com/rafal-rumanek/movehub/internal/config"
	"github.com/rafal-rumanek/movehub/internal/hub"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "path to config file (default: ~/.config/movehubctl/config.yaml)")
	initConfig := flag.Bool("init-config", false, "write a default config file and exit")
	ledColor := flag.String("led", "", "set the hub LED to a named color (off, pink, purple, blue, lightblue, cyan, green, yellow, orange, red, white)")
	port := flag.String("port", "", "motor port: A, B, AB, C, or D (default from config)")
	duty := flag.Int("duty", 0, "motor duty cycle -100..100, sign sets direction (default from config)")
	ms := flag.Int("ms", 0, "run the motor for this many milliseconds")
	angle := flag.Int("angle", 0, "turn the motor to this angle in encoder units")
	flag.Parse()

	if *initConfig {
		path, err := config.WriteDefault()
		if err != nil {
			log.Fatalf("init config: %v", err)
		}
		if path == "" {
			log.Println("Config file already exists, left untouched")
		} else {
			log.Printf("Wrote default config to %s", path)
		}
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})))

	if *port == "" {
		*port = cfg.Motor.Port
	}
	if *duty == 0 {
		*duty = cfg.Motor.DutyCycle
	}

	adapter := ble.NewTinyGoAdapter()
	if err := adapter.Enable(); err != nil {
		log.Fatalf("enable BLE adapter: %v", err)
	}

	session := hub.NewSession(adapter, hub.Events{
		ScanningChanged: func(scanning bool) {
			if scanning {
				log.Println("Scanning for a Move Hub...")
			}
		},
		HubFound: func(h hub.Hub) {
			log.Printf("Found %q at %s (%d dBm)", h.Name, h.Address, h.RSSI)
		},
		Connected: func() {
			log.Println("Hub ready")
		},
		Disconnected: func() {
			log.Println("Hub disconnected")
		},
		Error: func(err error) {
			log.Printf("ERROR: %v", err)
		},
		DataReceived: func(data []byte) {
			slog.Debug("hub notification", "data", fmt.Sprintf("%x", data))
		},
	})

	// Discovery covers scan plus connect; the core imposes no timeout of
	// its own, so the deadline comes entirely from config.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Scan.Timeout()+cfg.Scan.ConnectTimeout())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Interrupted, disconnecting")
		cancel()
		session.Disconnect()
		os.Exit(1)
	}()

	if err := session.Discover(ctx); err != nil {
		log.Fatalf("discover: %v", err)
	}
	defer session.Disconnect()

	if *ledColor != "" {
		if err := session.SetLED(*ledColor); err != nil {
			log.Fatalf("set LED: %v", err)
		}
		log.Printf("LED set to %s", *ledColor)
	}

	if *ms > 0 {
		if err := session.RunMotorFor(*port, *ms, *duty); err != nil {
			log.Fatalf("run motor: %v", err)
		}
		log.Printf("Running motor %s for %d ms at %d%%", *port, *ms, *duty)
		// The hub executes the command on its own clock; stay connected
		// until it finishes.
		time.Sleep(time.Duration(*ms)*time.Millisecond + 200*time.Millisecond)
	}

	if *angle > 0 {
		if err := session.RunMotorToAngle(*port, *angle, *duty); err != nil {
			log.Fatalf("run motor to angle: %v", err)
		}
		log.Printf("Turning motor %s to angle %d at %d%%", *port, *angle, *duty)
		time.Sleep(2 * time.Second)
	}

	if *ledColor == "" && *ms == 0 && *angle == 0 {
		log.Println("Connected. No command given; try -led, -ms, or -angle. Disconnecting.")
	}
}

// loadConfig loads the config from the given path, falling back to the
// default location, and to built-in defaults when no file exists at all.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	defaultPath := config.DefaultConfigPath()
	if _, err := os.Stat(defaultPath); err != nil {
		return config.Default(), nil
	}
	return config.Load(defaultPath)
}
