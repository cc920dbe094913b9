// Package config handles loading and parsing the HyteServe configuration
// file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/hyteserve/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/hyteserve/config.toml
//   - Data root: ./data (catalogs next to the working directory)
//   - Share URL: https://tinyplayerss.github.io/hyteserve/
//   - Page size: 10
//   - Log directory: ~/.local/share/hyteserve
//
// # TOML Format
//
// Example config.toml:
//
//	data_root = "https://tinyplayerss.github.io/hyteserve/"
//	share_url = "https://tinyplayerss.github.io/hyteserve/"
//	page_size = 10
//	placeholder_icon = "assets/placeholder.png"
//	log_dir = "~/.local/share/hyteserve"
//
// All fields are optional. Tilde expansion is performed for local paths.
//
// # Permalinks
//
// Config.Permalink appends the detail-view slug to the share URL as the
// card query parameter, matching the published site's address-bar contract:
// a shared link like <share_url>?card=my-cool-mod opens the same detail
// view on the website and (via the -card flag) in this client.
//
// # Error Handling
//
// Load returns errors only for path expansion failures, unreadable files,
// and TOML parse failures. A missing file silently yields defaults so the
// client runs out of the box against a local data checkout.
package config
