package ui

// Usage is printed for --help and -h
const Usage = `
USAGE:
  wallgrab [options]
  wallgrab config <init|show|validate>

DESCRIPTION:
  Downloads wallpapers from wallpaperswide.com in 1920x1080 resolution.
  Saves all files into the "downloads/" folder in the current directory.

OPTIONS:
  --start <number>      Starting page (default: 1)
  --end <number>        Ending page (default: the starting page)
  --output <dir>        Download folder (default: downloads)
  --page-delay <delay>  Pause between pages, e.g. 2s or 2000 (ms) (default: 2s)
  --base-url <url>      Gallery to scrape (default: https://wallpaperswide.com)
  --config <path>       Configuration file (default: .wallgrab.yaml if present)
  --log-level <level>   debug, info, warn, error or disabled (default: warn)
  --help, -h            Display this help message

ENVIRONMENT:
  WALLGRAB_BASE_URL, WALLGRAB_OUTPUT_DIR, WALLGRAB_PAGE_DELAY,
  WALLGRAB_HTTP_TIMEOUT, WALLGRAB_USER_AGENT, WALLGRAB_LOG_LEVEL, WALLGRAB_LOG_FILE

EXAMPLES:
  wallgrab
  wallgrab --start 1 --end 3
  wallgrab --start 2 --end 4 --output ~/Pictures/walls --page-delay 5s
  WALLGRAB_OUTPUT_DIR=~/Pictures/walls wallgrab --start 5 --end 8
`
