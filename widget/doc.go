// Package widget provides the stock widgets for canopy: Flex rows and
// columns, Padding, Label, Button, TextBox, an FPS readout and the
// IdentityWrapper used to give a widget a known id.
//
// Containers hold their children as *canopy.WidgetPod values and forward
// every pass to them; leaves implement canopy.Widget directly.
package widget
