// Package components is petal's widget kit: typed, themeable, keyboard-
// accessible building blocks for Bubble Tea applications.
//
// Widgets come in two flavours. Static widgets (Text, Badge, Button, Alert,
// Card, Divider, Stack, Navbar) are pure renderers: configure them with the
// WithX builder methods and call View. Interactive widgets (Tabs, Dropdown,
// Accordion, Swap, Tooltip, Modal, Carousel, Table, Loading) additionally
// implement Update and react to key presses while focused.
//
// All colour and spacing decisions resolve through the theme package, so
// swapping the current theme restyles every widget. Open/close behaviour is
// shared: every widget with a hidden panel delegates to a
// disclosure.Controller, which emits disclosure.ChangedMsg and cooperates
// with a disclosure.Group for focus return.
//
//	dd := components.NewDropdown("lang", "Language", []string{"Go", "Rust"})
//	dd.Focus()
//	cmd := dd.Update(keyPress)   // enter opens, arrows move, enter selects
//	out := dd.View()
package components
