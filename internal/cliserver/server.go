// Package cliserver exposes the REPL over a plain TCP socket: one
// goroutine and one fresh environment per connection, so nothing in one
// client's session is visible to another (spec.md's "no persisted
// state" carried across to the network-facing collaborator).
package cliserver

import (
	"bufio"
	"net"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/akashmaji946/gomix/internal/env"
	"github.com/akashmaji946/gomix/internal/repl"
)

// Server listens on one TCP address and hands each accepted connection
// its own Repl instance with its own environment.
type Server struct {
	Banner, Version, Line, Prompt string
	Log                           *logrus.Logger
}

// ListenAndServe blocks, accepting connections on addr (e.g. ":4000"),
// and returns the error of the first Accept that fails.
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	s.Log.WithField("addr", addr).Info("cliserver listening")
	for {
		conn, err := ln.Accept()
		if err != nil {
			s.Log.WithError(err).Warn("cliserver accept failed")
			return err
		}
		go s.handle(conn)
	}
}

// handle runs one client's session to completion: a fresh environment
// and evaluator, reading newline-delimited input directly off the
// socket (readline itself cannot front an arbitrary net.Conn, so this
// uses a plain bufio.Scanner rather than repl.Repl.Start).
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	remote := conn.RemoteAddr().String()
	s.Log.WithField("remote", remote).Info("client connected")

	r := repl.New(s.Banner, s.Version, s.Line, s.Prompt, s.Log)
	r.SetWriter(conn)
	r.PrintBanner(conn)

	scope := env.Fresh()
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":exit" {
			conn.Write([]byte("Good bye!\n"))
			break
		}
		scope = r.EvalLine(conn, line, scope)
	}
	s.Log.WithField("remote", remote).Info("client disconnected")
}
