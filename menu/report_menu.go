package menu

import "fmt"

func (m *Menu) manageReports() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Reports ===")
		fmt.Fprintln(m.out, "1. Export Unpaid Bills (xlsx)")
		fmt.Fprintln(m.out, "2. Export Payments (xlsx)")
		fmt.Fprintln(m.out, "3. Exit")

		choice, err := m.promptInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.exportReport("unpaid_bills.xlsx", m.reports.ExportUnpaidBills)
		case 2:
			err = m.exportReport("payments.xlsx", m.reports.ExportPayments)
		case 3:
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Try again.")
		}
		if err != nil {
			return err
		}
	}
}

// exportReport prompts for an output path with a default. A failed
// export is reported and the menu keeps running; the workbook is no
// part of the store.
func (m *Menu) exportReport(defaultPath string, export func(string) error) error {
	path, err := m.promptLine(fmt.Sprintf("Output file [%s]: ", defaultPath))
	if err != nil {
		return err
	}
	if path == "" {
		path = defaultPath
	}

	if err := export(path); err != nil {
		fmt.Fprintf(m.out, "Export failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(m.out, "Report written to %s.\n", path)
	return nil
}
