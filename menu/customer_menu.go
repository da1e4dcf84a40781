package menu

import "fmt"

func (m *Menu) manageCustomers() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Customer Management ===")
		fmt.Fprintln(m.out, "1. Add Customer")
		fmt.Fprintln(m.out, "2. View All Customers")
		fmt.Fprintln(m.out, "3. Update Customer")
		fmt.Fprintln(m.out, "4. Delete Customer")
		fmt.Fprintln(m.out, "5. Exit")

		choice, err := m.promptInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.addCustomer()
		case 2:
			err = m.listCustomers()
		case 3:
			err = m.updateCustomer()
		case 4:
			err = m.deleteCustomer()
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

func (m *Menu) addCustomer() error {
	name, err := m.promptLine("Name: ")
	if err != nil {
		return err
	}
	phone, err := m.promptLine("Phone: ")
	if err != nil {
		return err
	}
	email, err := m.promptLine("Email: ")
	if err != nil {
		return err
	}

	if _, err := m.customers.Create(name, phone, email); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Customer added successfully.")
	return nil
}

func (m *Menu) listCustomers() error {
	customers, err := m.customers.GetAll()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "---- Customers ----")
	for _, customer := range customers {
		fmt.Fprintf(m.out, "%d: %s | %s | %s\n", customer.ID, customer.Name, customer.Phone, customer.Email)
	}
	return nil
}

func (m *Menu) updateCustomer() error {
	customerID, err := m.promptUint("Enter Customer ID to update: ")
	if err != nil {
		return err
	}

	// Confirm the record exists before prompting for the replacement
	// fields, so a wrong ID does not cost the operator three answers.
	if _, err := m.customers.GetByID(customerID); err != nil {
		return m.report(err)
	}

	name, err := m.promptLine("New Name: ")
	if err != nil {
		return err
	}
	phone, err := m.promptLine("New Phone: ")
	if err != nil {
		return err
	}
	email, err := m.promptLine("New Email: ")
	if err != nil {
		return err
	}

	if _, err := m.customers.Update(customerID, name, phone, email); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Customer updated.")
	return nil
}

func (m *Menu) deleteCustomer() error {
	customerID, err := m.promptUint("Enter Customer ID to delete: ")
	if err != nil {
		return err
	}
	if err := m.customers.Delete(customerID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Customer deleted.")
	return nil
}
