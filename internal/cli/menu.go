// Package cli implements the line-oriented menu the demo runs on a
// terminal: register, login, then book against the shared registry.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/okaya/airticket/internal/domain"
	"github.com/okaya/airticket/internal/registry"
	"github.com/okaya/airticket/internal/service/booking"
)

var errEOF = errors.New("input closed")

type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	registry *registry.Registry
	bookings booking.BookingUseCase
}

func NewMenu(in io.Reader, out io.Writer, reg *registry.Registry, bookings booking.BookingUseCase) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		registry: reg,
		bookings: bookings,
	}
}

// Run drives the menu until the user exits or input closes. Every error
// kind is reported and tolerated; the loop itself never fails.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "============================================")
	fmt.Fprintln(m.out, "        WELCOME TO KAYA AIRLINES")
	fmt.Fprintln(m.out, "============================================")

	for {
		fmt.Fprintln(m.out, "\nMenu:")
		fmt.Fprintln(m.out, "1) Register")
		fmt.Fprintln(m.out, "2) Login")
		fmt.Fprintln(m.out, "3) Exit")

		choice, err := m.readInt("Choice: ", 1, 3)
		if err != nil {
			return nil
		}

		switch choice {
		case 1:
			m.register()
		case 2:
			m.login(ctx)
		case 3:
			fmt.Fprintln(m.out, "Goodbye.")
			return nil
		}
	}
}

func (m *Menu) register() {
	username, err := m.readNonEmpty("Username: ")
	if err != nil {
		return
	}
	email, err := m.readNonEmpty("Email: ")
	if err != nil {
		return
	}
	nationalID, err := m.readNonEmpty("National ID: ")
	if err != nil {
		return
	}
	password, err := m.readNonEmpty("Password: ")
	if err != nil {
		return
	}

	user, err := domain.NewUser(username, email, password, nationalID)
	if err != nil {
		fmt.Fprintf(m.out, "Registration failed: %v\n", err)
		return
	}
	if err := m.registry.RegisterUser(user); err != nil {
		fmt.Fprintf(m.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Registration successful!")
}

func (m *Menu) login(ctx context.Context) {
	username, err := m.readNonEmpty("Username: ")
	if err != nil {
		return
	}
	password, err := m.readNonEmpty("Password: ")
	if err != nil {
		return
	}

	user, err := m.registry.Login(username, password)
	if err != nil {
		fmt.Fprintf(m.out, "Login failed: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Login successful!")
	m.session(ctx, user)
}

func (m *Menu) session(ctx context.Context, user *domain.User) {
	for {
		fmt.Fprintln(m.out, "\nUser menu:")
		fmt.Fprintln(m.out, "1) List flights")
		fmt.Fprintln(m.out, "2) Place reservation")
		fmt.Fprintln(m.out, "3) Purchase reserved ticket")
		fmt.Fprintln(m.out, "4) Purchase ticket directly")
		fmt.Fprintln(m.out, "5) Cancel reservation")
		fmt.Fprintln(m.out, "6) Logout")

		choice, err := m.readInt("Choice: ", 1, 6)
		if err != nil {
			return
		}

		switch choice {
		case 1:
			m.listFlights()
		case 2:
			m.withFlight(func(f *domain.Flight) {
				msg, _ := m.bookings.Hold(ctx, user, f, time.Now())
				fmt.Fprintln(m.out, msg)
			})
		case 3:
			m.withFlight(func(f *domain.Flight) {
				msg, _ := m.bookings.ConvertToPurchase(ctx, user, f)
				fmt.Fprintln(m.out, msg)
			})
		case 4:
			m.withFlight(func(f *domain.Flight) {
				msg, _ := m.bookings.DirectPurchase(ctx, user, f, time.Now())
				fmt.Fprintln(m.out, msg)
			})
		case 5:
			m.withFlight(func(f *domain.Flight) {
				msg, _ := m.bookings.CancelHold(ctx, user, f)
				fmt.Fprintln(m.out, msg)
			})
		case 6:
			fmt.Fprintln(m.out, "Logged out.")
			return
		}
	}
}

func (m *Menu) listFlights() {
	fmt.Fprintln(m.out, "\nAvailable flights:")
	for i, f := range m.registry.ListFlights() {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, f.Describe())
	}
}

// withFlight lists the schedule, asks for a flight number and runs op on
// the selection.
func (m *Menu) withFlight(op func(*domain.Flight)) {
	m.listFlights()
	count := m.registry.FlightCount()
	if count == 0 {
		fmt.Fprintln(m.out, "No flights available.")
		return
	}
	n, err := m.readInt("Flight number: ", 1, count)
	if err != nil {
		return
	}
	flight, err := m.registry.FlightByIndex(n - 1)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	op(flight)
}

// readInt prompts until the user enters an integer in [min, max].
func (m *Menu) readInt(prompt string, min, max int) (int, error) {
	for {
		fmt.Fprint(m.out, prompt)
		if !m.in.Scan() {
			return 0, errEOF
		}
		val, err := strconv.Atoi(strings.TrimSpace(m.in.Text()))
		if err == nil && val >= min && val <= max {
			return val, nil
		}
		fmt.Fprintf(m.out, "Invalid input. Enter a number between %d and %d.\n", min, max)
	}
}

func (m *Menu) readNonEmpty(prompt string) (string, error) {
	for {
		fmt.Fprint(m.out, prompt)
		if !m.in.Scan() {
			return "", errEOF
		}
		s := strings.TrimSpace(m.in.Text())
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(m.out, "Input must not be empty.")
	}
}
