package cmd

import "fmt"

const usage = `Usage: httpstat URL [CURL_OPTIONS]
       httpstat -h | --help
       httpstat --version

Arguments:
  URL     url to request, could be with or without http(s):// prefix

Options:
  CURL_OPTIONS  any curl supported options, except for -w -D -o -s,
                which are already used internally.
  -h --help     show this screen.
  --version     show version.

Environments:
  HTTPSTAT_CURL_BIN    curl binary to use, defaults to "curl".
  HTTPSTAT_SHOW_IP     print the connection endpoints, defaults to false.
  HTTPSTAT_SHOW_BODY   print the response body, defaults to false.
  HTTPSTAT_BODY_LIMIT  number of body bytes to print, defaults to 1023.
  HTTPSTAT_SAVE_BODY   save the response body to the cache directory,
                       defaults to false.
  HTTPSTAT_SHOW_SPEED  print download and upload speed, defaults to false.
  HTTPSTAT_NO_COLOR    disable colored output, defaults to false.
  HTTPSTAT_DEBUG       print debug logs, defaults to false.
  HTTPSTAT_CONFIG      path of a YAML file holding the settings above,
                       keyed by their lower-case names without the
                       HTTPSTAT_ prefix.
`

func executeHelp() error {
	fmt.Print(usage)
	return nil
}
