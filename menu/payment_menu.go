package menu

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant-manager/utils"
)

func (m *Menu) managePayments() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Payment Management ===")
		fmt.Fprintln(m.out, "1. Record Payment")
		fmt.Fprintln(m.out, "2. View All Payments")
		fmt.Fprintln(m.out, "3. View Payment by Bill ID")
		fmt.Fprintln(m.out, "4. Exit")

		choice, err := m.promptInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.recordPayment()
		case 2:
			err = m.listPayments()
		case 3:
			err = m.showPaymentByBill()
		case 4:
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) recordPayment() error {
	billID, err := m.promptUint("Bill ID: ")
	if err != nil {
		return err
	}
	method, err := m.promptLine("Payment Method (Cash/Card/UPI/Wallet): ")
	if err != nil {
		return err
	}
	amount, err := m.promptFloat("Amount Paid: ")
	if err != nil {
		return err
	}

	if _, err := m.payments.Record(billID, method, amount); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Payment recorded successfully.")
	return nil
}

func (m *Menu) listPayments() error {
	payments, err := m.payments.GetAll()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "---- Payments ----")
	for _, payment := range payments {
		fmt.Fprintf(m.out, "%d: Bill %d | Method: %s | Amount: %s\n",
			payment.ID, payment.BillID, payment.Method, utils.FormatAmount(payment.AmountPaid))
	}
	return nil
}

func (m *Menu) showPaymentByBill() error {
	billID, err := m.promptUint("Enter Bill ID: ")
	if err != nil {
		return err
	}

	payment, err := m.payments.GetByBillID(billID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fmt.Fprintln(m.out, "Payment not found for this bill.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Payment ID: %d | Amount: %s | Method: %s\n",
		payment.ID, utils.FormatAmount(payment.AmountPaid), payment.Method)
	return nil
}
