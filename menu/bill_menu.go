package menu

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant-manager/utils"
)

func (m *Menu) manageBills() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Bill Management ===")
		fmt.Fprintln(m.out, "1. Generate Bill")
		fmt.Fprintln(m.out, "2. View All Bills")
		fmt.Fprintln(m.out, "3. View Bill by Order ID")
		fmt.Fprintln(m.out, "4. View Unpaid Bills")
		fmt.Fprintln(m.out, "5. Update Bill")
		fmt.Fprintln(m.out, "6. Delete Bill")
		fmt.Fprintln(m.out, "7. Exit")

		choice, err := m.promptInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.generateBill()
		case 2:
			err = m.listBills()
		case 3:
			err = m.showBillByOrder()
		case 4:
			err = m.listUnpaidBills()
		case 5:
			err = m.updateBill()
		case 6:
			err = m.deleteBill()
		case 7:
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) generateBill() error {
	orderID, err := m.promptUint("Order ID: ")
	if err != nil {
		return err
	}
	total, err := m.promptFloat("Total Amount: ")
	if err != nil {
		return err
	}
	discount, err := m.promptFloat("Discount: ")
	if err != nil {
		return err
	}
	tax, err := m.promptFloat("Tax: ")
	if err != nil {
		return err
	}

	if _, err := m.bills.Generate(orderID, total, discount, tax); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Bill generated successfully.")
	return nil
}

// The bill summary lists outstanding bills; settled ones drop out of it.
func (m *Menu) listBills() error {
	bills, err := m.bills.GetUnpaid()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "---- Bills ----")
	for _, bill := range bills {
		fmt.Fprintf(m.out, "%d: Order %d | Total: %s | Final: %s | Status: %s\n",
			bill.ID, bill.OrderID,
			utils.FormatAmount(bill.TotalAmount), utils.FormatAmount(bill.FinalAmount), bill.PaymentStatus)
	}
	return nil
}

func (m *Menu) showBillByOrder() error {
	orderID, err := m.promptUint("Enter Order ID: ")
	if err != nil {
		return err
	}

	bill, err := m.bills.GetByOrderID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fmt.Fprintln(m.out, "Bill not found for this order.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Bill ID: %d | Total: %s | Final: %s\n",
		bill.ID, utils.FormatAmount(bill.TotalAmount), utils.FormatAmount(bill.FinalAmount))
	return nil
}

func (m *Menu) listUnpaidBills() error {
	bills, err := m.bills.GetUnpaid()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "---- Unpaid Bills ----")
	for _, bill := range bills {
		fmt.Fprintf(m.out, "%d: Order %d | Final Amount: %s\n",
			bill.ID, bill.OrderID, utils.FormatAmount(bill.FinalAmount))
	}
	return nil
}

func (m *Menu) updateBill() error {
	billID, err := m.promptUint("Enter Bill ID to update: ")
	if err != nil {
		return err
	}

	// Confirm the record exists before prompting for the replacement
	// fields, so a wrong ID does not cost the operator three answers.
	if _, err := m.bills.GetByID(billID); err != nil {
		return m.report(err)
	}

	total, err := m.promptFloat("New Total Amount: ")
	if err != nil {
		return err
	}
	discount, err := m.promptFloat("New Discount: ")
	if err != nil {
		return err
	}
	tax, err := m.promptFloat("New Tax: ")
	if err != nil {
		return err
	}

	if _, err := m.bills.Update(billID, total, discount, tax); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Bill updated.")
	return nil
}

func (m *Menu) deleteBill() error {
	billID, err := m.promptUint("Enter Bill ID to delete: ")
	if err != nil {
		return err
	}
	if err := m.bills.Delete(billID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Bill deleted.")
	return nil
}
