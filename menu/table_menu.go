package menu

import "fmt"

func (m *Menu) manageTables() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Table Management ===")
		fmt.Fprintln(m.out, "1. Add Table")
		fmt.Fprintln(m.out, "2. View All Tables")
		fmt.Fprintln(m.out, "3. Update Table")
		fmt.Fprintln(m.out, "4. Delete Table")
		fmt.Fprintln(m.out, "5. Exit")

		choice, err := m.promptInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.addTable()
		case 2:
			err = m.listTables()
		case 3:
			err = m.updateTable()
		case 4:
			err = m.deleteTable()
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

func (m *Menu) addTable() error {
	number, err := m.promptInt("Table Number: ")
	if err != nil {
		return err
	}
	capacity, err := m.promptInt("Capacity: ")
	if err != nil {
		return err
	}

	if _, err := m.tables.Create(number, capacity); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Table added successfully.")
	return nil
}

func (m *Menu) listTables() error {
	tables, err := m.tables.GetAll()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "---- Tables ----")
	for _, table := range tables {
		fmt.Fprintf(m.out, "%d: Table %d | Capacity: %d | Status: %s\n",
			table.ID, table.TableNumber, table.Capacity, table.Status)
	}
	return nil
}

func (m *Menu) updateTable() error {
	if err := m.listTables(); err != nil {
		return err
	}

	tableID, err := m.promptUint("Enter Table ID to update: ")
	if err != nil {
		return err
	}

	// Confirm the record exists before prompting for the replacement
	// fields, so a wrong ID does not cost the operator three answers.
	if _, err := m.tables.GetByID(tableID); err != nil {
		return m.report(err)
	}

	number, err := m.promptInt("New Table Number: ")
	if err != nil {
		return err
	}
	capacity, err := m.promptInt("New Capacity: ")
	if err != nil {
		return err
	}
	status, err := m.promptLine("Status (Available/Occupied/Booked/Reserved): ")
	if err != nil {
		return err
	}

	if _, err := m.tables.Update(tableID, number, capacity, status); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Table updated.")
	return nil
}

func (m *Menu) deleteTable() error {
	if err := m.listTables(); err != nil {
		return err
	}

	tableID, err := m.promptUint("Enter Table ID to delete: ")
	if err != nil {
		return err
	}
	if err := m.tables.Delete(tableID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Table deleted.")
	return nil
}
