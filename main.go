package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/yucath/fpl-minileague-dashboard/controller"
	"github.com/yucath/fpl-minileague-dashboard/fpl"
	"github.com/yucath/fpl-minileague-dashboard/web"
)

const (
	defaultPort     = 8501
	defaultLeagueID = 469324

	// How often the cached snapshots are rebuilt while the server runs.
	refreshFrequency = 2 * time.Minute
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	portNum := defaultPort
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	leagueID := defaultLeagueID
	league := os.Getenv("FPL_LEAGUE_ID")
	if league != "" {
		leagueID, err = strconv.Atoi(league)
		if err != nil {
			log.Fatalf("error parsing league id: %v", err)
		}
	}

	clock := clock.New()

	fplClient, err := fpl.New()
	if err != nil {
		log.Fatalf("error creating fpl client: %v", err)
	}

	ctrl, err := controller.New(clock, fplClient, leagueID)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that keeps the FPL snapshots warm during live gameweeks.
	wg.Add(1)
	go ctrl.RunPeriodicRefresh(refreshFrequency, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
