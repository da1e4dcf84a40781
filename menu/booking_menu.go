package menu

import "fmt"

func (m *Menu) manageBookings() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Table Booking Management ===")
		fmt.Fprintln(m.out, "1. Add Booking")
		fmt.Fprintln(m.out, "2. View All Bookings")
		fmt.Fprintln(m.out, "3. Update Booking Status")
		fmt.Fprintln(m.out, "4. Delete Booking")
		fmt.Fprintln(m.out, "5. Exit")

		choice, err := m.promptInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.addBooking()
		case 2:
			err = m.listBookings()
		case 3:
			err = m.updateBookingStatus()
		case 4:
			err = m.deleteBooking()
		case 5:
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) addBooking() error {
	customerID, err := m.promptUint("Customer ID: ")
	if err != nil {
		return err
	}
	tableID, err := m.promptUint("Table ID: ")
	if err != nil {
		return err
	}
	date, err := m.promptLine("Booking Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	bookTime, err := m.promptLine("Booking Time (HH:MM:SS): ")
	if err != nil {
		return err
	}

	if _, err := m.bookings.Create(customerID, tableID, date, bookTime); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Booking added successfully.")
	return nil
}

func (m *Menu) listBookings() error {
	bookings, err := m.bookings.GetAll()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "---- Bookings ----")
	for _, booking := range bookings {
		fmt.Fprintf(m.out, "%d: Customer %d | Table %d | Date: %s | Status: %s\n",
			booking.ID, booking.CustomerID, booking.TableID,
			booking.BookingDate.Format("2006-01-02"), booking.Status)
	}
	return nil
}

func (m *Menu) updateBookingStatus() error {
	bookingID, err := m.promptUint("Enter Booking ID to update: ")
	if err != nil {
		return err
	}
	status, err := m.promptLine("New Status (Confirmed/Cancelled/Completed): ")
	if err != nil {
		return err
	}

	if _, err := m.bookings.UpdateStatus(bookingID, status); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Booking status updated.")
	return nil
}

func (m *Menu) deleteBooking() error {
	bookingID, err := m.promptUint("Enter Booking ID to delete: ")
	if err != nil {
		return err
	}
	if err := m.bookings.Delete(bookingID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Booking deleted.")
	return nil
}
