package stream

import (
	"context"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client     mqtt.Client
	controller *Controller
	topic      string
	qos        byte
	interval   time.Duration
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, controller *Controller) *Streamer {
	s := new(Streamer)
	s.client = client
	s.controller = controller
	s.topic = config.Mqtt.Topics.Stream
	s.qos = config.Mqtt.Qos
	s.interval = time.Duration(float64(time.Second) / config.FrameRate)
	return s
}

// SendFrame advances the animation by dt seconds and sends the resulting frame
// as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(dt float64) error {
	f := s.controller.Tick(dt)
	b, err := f.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "marshal frame")
	}

	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	return errors.Wrapf(token.Error(), "publish %s", s.topic)
}

// Run causes the Streamer to send Frames at the configured frame rate until
// ctx is cancelled. Each tick advances the animation by the wall time since
// the previous one.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-publishTimer.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := s.SendFrame(dt); err != nil {
				log.Println(err)
			}
		}
	}
}
