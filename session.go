package main

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"go.uber.org/zap"
)

// Session reads commands one line at a time and applies them to a book.
type Session struct {
	book    *AddressBook
	in      lineReader
	out     *console
	prompts PromptConfig
	logger  *zap.Logger
}

func NewSession(book *AddressBook, in lineReader, out *console, prompts PromptConfig, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		book:    book,
		in:      in,
		out:     out,
		prompts: prompts,
		logger:  logger,
	}
}

// Run processes commands until quit or end of input. End of input is not
// an error.
func (s *Session) Run() error {
	s.logger.Info("Session started", zap.Int("entries", s.book.Len()))
	err := s.loop()
	s.logger.Info("Session ended", zap.Int("entries", s.book.Len()), zap.Error(err))
	return err
}

func (s *Session) loop() error {
	for {
		input, err := s.readLine(s.prompts.Command)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("unable to read command: %w", err)
		}

		// Commands match exactly; padded or differently cased input is
		// an unknown command.
		command := strings.TrimRight(input, "\r")
		if command == "" {
			continue
		}
		s.logger.Debug("Command", zap.String("command", command))

		switch command {
		case "quit":
			return nil
		case "list":
			s.print(s.book.List())
		case "sort":
			s.print(s.book.Sort())
		case "add":
			err = s.add()
		case "filter":
			err = s.filter()
		default:
			// Unknown commands are ignored.
		}
		if errors.Is(err, io.EOF) {
			s.out.warn("Input ended in the middle of %q", command)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) add() error {
	name, err := s.readLine(s.prompts.Name)
	if err != nil {
		return wrapRead("name", err)
	}
	lastname, err := s.readLine(s.prompts.Lastname)
	if err != nil {
		return wrapRead("lastname", err)
	}
	if s.book.Add(name, lastname) {
		s.logger.Debug("Entry added", zap.String("name", name))
	} else {
		s.logger.Debug("Duplicate name ignored", zap.String("name", name))
	}
	return nil
}

func (s *Session) filter() error {
	search, err := s.readLine(s.prompts.Search)
	if err != nil {
		return wrapRead("search term", err)
	}
	s.print(s.book.Filter(Matching(search)))
	return nil
}

func (s *Session) readLine(prompt string) (string, error) {
	s.in.SetPrompt(prompt)
	return s.in.ReadLine()
}

func (s *Session) print(seq iter.Seq2[string, string]) {
	for name, lastname := range seq {
		s.out.entry(name, lastname)
	}
}

func wrapRead(what string, err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	return fmt.Errorf("unable to read %s: %w", what, err)
}
