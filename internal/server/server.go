// Package server exposes the simulation over websockets: /track accepts
// hand-tracking samples from an external tracker, /frames streams particle
// positions back to renderers.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/hand"
	"github.com/rohitTo95/God-Hand-Particle-Simulator/internal/session"
)

// Config holds the listen address and the outbound stream rate.
type Config struct {
	Addr      string
	FrameRate int
}

// Server drives a live session from tracker input and broadcasts the
// resulting frames.
type Server struct {
	cfg    Config
	sess   *session.Session
	latest *hand.Latest
	frames *FrameHub
	track  *TrackHandler
}

func New(cfg Config, sess *session.Session, latest *hand.Latest) *Server {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = 30
	}
	return &Server{
		cfg:    cfg,
		sess:   sess,
		latest: latest,
		frames: NewFrameHub(),
		track:  NewTrackHandler(latest),
	}
}

// Run serves until ctx is cancelled, stepping the simulation at the
// configured frame rate.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/track", s.track)
	mux.Handle("/frames", s.frames)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{Addr: s.cfg.Addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	go s.loop(ctx)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// loop is the live tick loop: step the session at the frame rate and push
// the resulting positions to all frame subscribers.
func (s *Server) loop(ctx context.Context) {
	dt := 1.0 / float64(s.cfg.FrameRate)
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		_, g := s.sess.Tick(t, dt)
		s.frames.Broadcast(s.sess.Simulator(), g, t)
		t += dt
	}
}
