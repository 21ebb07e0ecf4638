package renderer

type UiAction rune

const (
	Unknown   UiAction = iota
	Quit      UiAction = 81 // 'Q'
	P1Up      UiAction = 87 // 'W'
	P1Down    UiAction = 83 // 'S'
	P2Up      UiAction = 73 // 'I'
	P2Down    UiAction = 75 // 'K'
	UpArrow   UiAction = 8593
	DownArrow UiAction = 8595
)

const (
	esc   byte = 27
	ctrlC byte = 3
)

// ProcessInput turns one read from a raw terminal into actions. A single read
// can hold several key presses when the terminal repeats a held key.
func ProcessInput(raw []byte) []UiAction {
	var actions []UiAction
	for i := 0; i < len(raw); i++ {
		b := raw[i]
		switch {
		case b == ctrlC:
			actions = append(actions, Quit)
		case b == esc:
			// Arrow keys come in as ESC [ A/B. A lone ESC is the escape key.
			if i+2 < len(raw) && raw[i+1] == '[' {
				switch raw[i+2] {
				case 'A':
					actions = append(actions, UpArrow)
				case 'B':
					actions = append(actions, DownArrow)
				default:
					actions = append(actions, Unknown)
				}
				i += 2
				continue
			}
			if i+1 < len(raw) && raw[i+1] == '[' {
				i++
				continue
			}
			actions = append(actions, Quit)
		default:
			actions = append(actions, processKey(rune(b)))
		}
	}
	return actions
}

func processKey(rawInput rune) UiAction {
	inputVal := int(rawInput)
	// Convert to UpperCase
	if inputVal >= 97 && inputVal <= 122 {
		inputVal = inputVal - 32
	}
	switch action := UiAction(inputVal); action {
	case Quit, P1Up, P1Down, P2Up, P2Down:
		return action
	default:
		return Unknown
	}
}
