package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledanim/api"
	"github.com/matt-g-everett/ledanim/stream"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Commands   *stream.CommandQueue
	Controller *stream.Controller
	Streamer   *stream.Streamer
}

func newApp() *app {
	a := new(app)
	a.Commands = stream.NewCommandQueue()
	return a
}

func (a *app) readConfig(configPath string) {
	config, err := stream.ReadConfig(configPath)
	if err != nil {
		panic(err)
	}
	a.Config = config
}

func (a *app) loadTracks() {
	defs, err := stream.LoadTracks(a.Config.Tracks)
	if err != nil {
		panic(err)
	}

	a.Controller = stream.NewController(a.Config.Playlist, a.Commands)
	if err := a.Controller.Load(defs); err != nil {
		panic(err)
	}
}

func (a *app) watch(ctx context.Context) {
	w, err := stream.NewWatcher(a.Config.Tracks, a.Commands)
	if err != nil {
		log.Printf("Not watching tracks: %v", err)
		return
	}
	go func() {
		defer w.Close()
		w.Run(ctx)
	}()
}

func (a *app) run(ctx context.Context) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	log.Println("Connected")
	defer a.Client.Disconnect(250)

	if err := a.Streamer.Run(ctx); err != nil && err != context.Canceled {
		log.Println(err)
	}
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: broker=%s topic=%s tracks=%s playlist=%v",
		a.Config.Mqtt.URL, a.Config.Mqtt.Topics.Stream, a.Config.Tracks, a.Config.Playlist)
	a.loadTracks()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if a.Config.Watch {
		a.watch(ctx)
	}

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(a.Config, a.Client, a.Controller)

	server := api.NewApi(a.Controller, a.Commands, a.Config.Api.Static)
	go func() {
		if err := server.Serve(a.Config.Api.Addr); err != nil {
			log.Println(err)
		}
	}()

	a.run(ctx)
}
