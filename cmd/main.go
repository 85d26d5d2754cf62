// cancelpoint - cooperative cancellation checkpoints for long computations
// Demo host: runs a CPU-bound workload that stays responsive to user abort
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"cancelpoint/internal/checkpoint"
	"cancelpoint/internal/config"
	"cancelpoint/internal/msgqueue"
	"cancelpoint/internal/oneshot"
	"cancelpoint/internal/tray"
)

var (
	version  = "0.1.0"
	showVer  = flag.Bool("version", false, "Show version")
	useTray  = flag.Bool("tray", false, "Show computation status in the system tray")
	interval = flag.Int("interval", 0, "Checkpoint gate interval in milliseconds (overrides config)")
	limit    = flag.Int("limit", 20000000, "Count primes below this bound")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("cancelpoint version %s\n", version)
		return
	}

	// Initialize config
	cfgMgr, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	if err := cfgMgr.Load(); err != nil {
		log.Printf("Warning: failed to load config: %v", err)
	}

	cfg := cfgMgr.Get()
	if *interval > 0 {
		cfg.Checkpoint.GateIntervalMS = *interval
	}
	if *useTray {
		cfg.General.TrayEnabled = true
	}

	if cfg.General.TrayEnabled {
		runWithTray(cfg)
		return
	}
	runConsole(cfg)
}

func runConsole(cfg *config.Config) {
	count, err := countPrimes(cfg, *limit, nil)
	report(count, err)
}

func runWithTray(cfg *config.Config) {
	tr := tray.New("cancelpoint")
	tr.AddMenuItem("Quit", func() {
		tr.Stop()
		os.Exit(0)
	})

	go func() {
		count, err := countPrimes(cfg, *limit, tr)
		report(count, err)
		tr.Stop()
	}()

	// Blocks until the workload finishes or Quit is clicked
	tr.Run()
}

func report(count int, err error) {
	var abort *checkpoint.AbortError
	if errors.As(err, &abort) {
		log.Printf("Main: computation aborted (%v) with %d primes counted", abort, count)
		return
	}
	if err != nil {
		log.Fatalf("Main: computation failed: %v", err)
	}
	fmt.Printf("Counted %d primes below %d\n", count, *limit)
}

// countPrimes counts primes below the bound. The hot loop only reads the
// gate timer each iteration; the message queue is probed when it expires.
// On an abort signal the user is asked to confirm (press/click again): on
// decline the loop resumes exactly where it left off, count and candidate
// survive because the signal is an ordinary error return, and the gate
// timer is restarted.
func countPrimes(cfg *config.Config, limit int, tr *tray.Tray) (int, error) {
	// Message queues are per OS thread; every peek must come from the
	// same thread or consecutive checks would probe different queues
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cp := checkpoint.New(msgqueue.NewProbe())
	gate := oneshot.New()
	if err := gate.Run(cfg.GateInterval()); err != nil {
		return 0, fmt.Errorf("failed to start gate timer: %w", err)
	}

	asked := false
	count := 0
	for n := 2; n < limit; n++ {
		if isPrime(n) {
			count++
		}

		if !gate.TimedOut() {
			continue
		}

		err := cp.CheckForUserAbort()
		var abort *checkpoint.AbortError
		if errors.As(err, &abort) {
			if !cfg.Checkpoint.ConfirmAbort || asked {
				return count, abort
			}
			asked = true
			log.Printf("Main: %v (signal again to confirm, resuming)", abort)
		}

		if cfg.General.LogProgress {
			log.Printf("Main: %d primes below %d so far", count, n)
		}
		if tr != nil {
			tr.SetStatus(fmt.Sprintf("cancelpoint: %d primes below %d", count, n))
		}

		gate.Reset()
		if err := gate.Run(cfg.GateInterval()); err != nil {
			return count, fmt.Errorf("failed to restart gate timer: %w", err)
		}
	}
	return count, nil
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
