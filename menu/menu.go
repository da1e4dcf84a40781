package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"restaurant-manager/controllers"
	"restaurant-manager/models"
	"restaurant-manager/services"
)

// Menu drives the interactive session. One operation runs to completion
// at a time. Expected workflow errors (missing record, bad enum value,
// unavailable table) are printed and the loop continues; anything else
// is a store failure and ends the session.
type Menu struct {
	in  *bufio.Reader
	out io.Writer

	users     *controllers.UserController
	customers *controllers.CustomerController
	tables    *controllers.TableController
	orders    *controllers.OrderController
	bills     *controllers.BillController
	payments  *controllers.PaymentController
	bookings  *controllers.BookingController
	reports   *services.ReportService
}

// Run reads menu selections from in until Exit is chosen or the input
// ends. The returned error, when non-nil, is always a store failure.
func Run(db *gorm.DB, in io.Reader, out io.Writer) error {
	m := &Menu{
		in:        bufio.NewReader(in),
		out:       out,
		users:     controllers.NewUserController(db),
		customers: controllers.NewCustomerController(db),
		tables:    controllers.NewTableController(db),
		orders:    controllers.NewOrderController(db),
		bills:     controllers.NewBillController(db),
		payments:  controllers.NewPaymentController(db),
		bookings:  controllers.NewBookingController(db),
		reports:   services.NewReportService(db),
	}
	if err := m.loop(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (m *Menu) loop() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Restaurant Management System ===")
		fmt.Fprintln(m.out, "1. User Management")
		fmt.Fprintln(m.out, "2. Customer Management")
		fmt.Fprintln(m.out, "3. Table Management")
		fmt.Fprintln(m.out, "4. Order Management")
		fmt.Fprintln(m.out, "5. Bill Management")
		fmt.Fprintln(m.out, "6. Payment Management")
		fmt.Fprintln(m.out, "7. Table Booking Management")
		fmt.Fprintln(m.out, "8. Reports")
		fmt.Fprintln(m.out, "9. Exit")

		choice, err := m.promptInt("Choose an option: ")
		if err != nil {
			return err
		}

		var menuErr error
		switch choice {
		case 1:
			menuErr = m.manageUsers()
		case 2:
			menuErr = m.manageCustomers()
		case 3:
			menuErr = m.manageTables()
		case 4:
			menuErr = m.manageOrders()
		case 5:
			menuErr = m.manageBills()
		case 6:
			menuErr = m.managePayments()
		case 7:
			menuErr = m.manageBookings()
		case 8:
			menuErr = m.manageReports()
		case 9:
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Try again.")
		}
		if menuErr != nil {
			return menuErr
		}
	}
}

// report prints expected workflow errors and swallows them so the menu
// keeps running; everything else is passed back up as a store failure.
func (m *Menu) report(err error) error {
	var enumErr *models.InvalidEnumError
	var workflowErr *controllers.CustomError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		fmt.Fprintln(m.out, "Record not found.")
	case errors.As(err, &enumErr):
		fmt.Fprintf(m.out, "%s.\n", enumErr.Error())
	case errors.As(err, &workflowErr):
		fmt.Fprintf(m.out, "%s.\n", workflowErr.Message)
	default:
		return err
	}
	return nil
}

func (m *Menu) promptLine(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) promptInt(label string) (int, error) {
	for {
		text, err := m.promptLine(label)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(text)
		if convErr == nil {
			return value, nil
		}
		fmt.Fprintln(m.out, "Please enter a number.")
	}
}

func (m *Menu) promptUint(label string) (uint, error) {
	for {
		text, err := m.promptLine(label)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.ParseUint(text, 10, 32)
		if convErr == nil {
			return uint(value), nil
		}
		fmt.Fprintln(m.out, "Please enter a valid ID.")
	}
}

func (m *Menu) promptFloat(label string) (float64, error) {
	for {
		text, err := m.promptLine(label)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.ParseFloat(text, 64)
		if convErr == nil {
			return value, nil
		}
		fmt.Fprintln(m.out, "Please enter an amount.")
	}
}
