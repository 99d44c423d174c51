package main

// banner is printed on startup before any command output.
const banner = "\n" +
	"         __    ___        __    _\n" +
	"  ___ _ / /_  / _/ ___   / /   (_)  ___   ___\n" +
	" / _ `// __/ / _/ / _ \\ / _ \\ / /  / _ \\ (_-<\n" +
	" \\_, / \\__/ /_/   \\___//_.__//_/  /_//_//___/\n" +
	"/___/\n"
