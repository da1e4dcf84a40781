package menu

import "fmt"

func (m *Menu) manageUsers() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== User Management ===")
		fmt.Fprintln(m.out, "1. Add User")
		fmt.Fprintln(m.out, "2. View All Users")
		fmt.Fprintln(m.out, "3. Update User Email")
		fmt.Fprintln(m.out, "4. Delete User")
		fmt.Fprintln(m.out, "5. Exit")

		choice, err := m.promptInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.addUser()
		case 2:
			err = m.listUsers()
		case 3:
			err = m.updateUserEmail()
		case 4:
			err = m.deleteUser()
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

func (m *Menu) addUser() error {
	username, err := m.promptLine("Username: ")
	if err != nil {
		return err
	}
	password, err := m.promptLine("Password: ")
	if err != nil {
		return err
	}
	email, err := m.promptLine("Email: ")
	if err != nil {
		return err
	}
	phone, err := m.promptLine("Phone: ")
	if err != nil {
		return err
	}
	role, err := m.promptLine("Role (Manager/Waiter/KitchenStaff): ")
	if err != nil {
		return err
	}

	if _, err := m.users.Create(username, password, email, phone, role); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "User added successfully.")
	return nil
}

func (m *Menu) listUsers() error {
	users, err := m.users.GetAll()
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "---- Users ----")
	for _, user := range users {
		fmt.Fprintf(m.out, "%d: %s | %s | %s\n", user.ID, user.Username, user.Role, user.Email)
	}
	return nil
}

func (m *Menu) updateUserEmail() error {
	userID, err := m.promptUint("Enter User ID to update: ")
	if err != nil {
		return err
	}
	email, err := m.promptLine("New Email: ")
	if err != nil {
		return err
	}

	if _, err := m.users.UpdateEmail(userID, email); err != nil {
		return m.report(err)
	}
	fmt.Fprintln(m.out, "Email updated.")
	return nil
}

func (m *Menu) deleteUser() error {
	userID, err := m.promptUint("Enter User ID to delete: ")
	if err != nil {
		return err
	}
	if err := m.users.Delete(userID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "User deleted.")
	return nil
}
