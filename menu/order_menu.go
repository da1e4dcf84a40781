package menu

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant-manager/models"
)

func (m *Menu) manageOrders() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Order Management ===")
		fmt.Fprintln(m.out, "1. Add Order")
		fmt.Fprintln(m.out, "2. View All Orders")
		fmt.Fprintln(m.out, "3. Update Order Status")
		fmt.Fprintln(m.out, "4. Delete Order")
		fmt.Fprintln(m.out, "5. Exit")

		choice, err := m.promptInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.addOrder()
		case 2:
			err = m.listOrders()
		case 3:
			err = m.updateOrderStatus()
		case 4:
			err = m.deleteOrder()
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

func (m *Menu) addOrder() error {
	free, err := m.tables.FindByStatus(models.TableAvailable)
	if err != nil {
		return err
	}
	if len(free) == 0 {
		fmt.Fprintln(m.out, "No available tables at the moment.")
		return nil
	}

	fmt.Fprintln(m.out, "---- Available Tables ----")
	for _, table := range free {
		fmt.Fprintf(m.out, "ID: %d | Table #: %d | Status: %s\n", table.ID, table.TableNumber, table.Status)
	}

	tableID, err := m.promptUint("Table ID: ")
	if err != nil {
		return err
	}

	// Reject a bad pick before asking for the waiter; order creation
	// re-validates inside its transaction.
	table, err := m.tables.GetByID(tableID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err != nil || table.Status != models.TableAvailable {
		fmt.Fprintln(m.out, "Invalid Table ID or table is not available. Please select from available tables only.")
		return nil
	}

	waiterID, err := m.promptUint("Waiter ID: ")
	if err != nil {
		return err
	}

	if _, err := m.orders.Create(tableID, waiterID); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Order added successfully.")
	return nil
}

func (m *Menu) listOrders() error {
	orders, err := m.orders.GetAll()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "---- Orders ----")
	for _, order := range orders {
		fmt.Fprintf(m.out, "%d: Table %d | Waiter: %d | Status: %s\n",
			order.ID, order.TableID, order.WaiterID, order.Status)
	}
	return nil
}

func (m *Menu) updateOrderStatus() error {
	orderID, err := m.promptUint("Enter Order ID to update: ")
	if err != nil {
		return err
	}
	status, err := m.promptLine("New Status (Placed/Preparing/Served/Completed): ")
	if err != nil {
		return err
	}

	if _, err := m.orders.UpdateStatus(orderID, status); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Order status updated.")
	return nil
}

func (m *Menu) deleteOrder() error {
	orderID, err := m.promptUint("Enter Order ID to delete: ")
	if err != nil {
		return err
	}
	if err := m.orders.Delete(orderID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Order deleted.")
	return nil
}
