// Package paths resolves the directories the vin CLI reads from and writes to.
//
// It wraps github.com/adrg/xdg so that configuration and data files follow
// the XDG Base Directory conventions on every platform:
//
//	paths.ConfigDir()       // ~/.config/vin
//	paths.ConfigFile()      // ~/.config/vin/config.yaml
//	paths.PrefixTableFile() // ~/.local/share/vin/prefixes.txt
//
// [ExpandHome] turns a leading "~/" in user supplied paths into the home
// directory, which is how the prefix_table setting is interpreted.
package paths
