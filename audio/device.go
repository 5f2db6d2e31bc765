package audio

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// pickerRow is one selectable line: a real device, or the system-default
// entry (nil device).
type pickerRow struct {
	device *DeviceInfo
	label  string
}

func pickerRows(devices []DeviceInfo) []pickerRow {
	rows := make([]pickerRow, 0, len(devices)+1)
	rows = append(rows, pickerRow{label: "system default"})
	for i := range devices {
		label := devices[i].Name
		if IsBluetooth(devices[i].Name) {
			label += " \x1b[33m[⚠ Lower audio quality]\x1b[0m"
		}
		rows = append(rows, pickerRow{device: &devices[i], label: label})
	}
	return rows
}

// SelectDevice presents an interactive device picker and returns the selected
// device; nil means the system default. With a single device it returns that
// device immediately without prompting.
func SelectDevice(ctx Context) (*DeviceInfo, error) {
	devices, err := ctx.Devices()
	if err != nil {
		return nil, fmt.Errorf("enumerating devices: %w", err)
	}

	if len(devices) == 0 {
		return nil, fmt.Errorf("no capture devices found")
	}

	if len(devices) == 1 {
		return &devices[0], nil
	}

	rows := pickerRows(devices)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	cursor := 0
	renderList := func() {
		fmt.Print("\r\x1b[J")
		fmt.Print("Select input device (↑/↓, Enter to confirm):\r\n\r\n")
		for i, row := range rows {
			if i == cursor {
				fmt.Printf("  \x1b[1;36m▶ %s\x1b[0m\r\n", row.label)
			} else {
				fmt.Printf("    %s\r\n", row.label)
			}
		}
	}

	renderList()

	buf := make([]byte, 3)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}

		if n == 1 {
			switch buf[0] {
			case 13: // Enter
				fmt.Print("\r\n")
				term.Restore(fd, oldState)
				return rows[cursor].device, nil
			case 3: // Ctrl+C
				fmt.Print("\r\n")
				term.Restore(fd, oldState)
				os.Exit(130)
			case 'j':
				if cursor < len(rows)-1 {
					cursor++
				}
			case 'k':
				if cursor > 0 {
					cursor--
				}
			}
		} else if n == 3 && buf[0] == 0x1b && buf[1] == '[' {
			switch buf[2] {
			case 'A': // Up arrow
				if cursor > 0 {
					cursor--
				}
			case 'B': // Down arrow
				if cursor < len(rows)-1 {
					cursor++
				}
			}
		}

		lines := len(rows) + 2
		fmt.Printf("\x1b[%dA", lines)
		renderList()
	}
}
