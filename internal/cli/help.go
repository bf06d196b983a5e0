package cli

// Version: 发布版本号, 构建时可用 -ldflags 覆盖.
var Version = "1.0.0"

// Help 返回完整用法文本 (含结尾换行).
func Help() string {
	return `Usage: splitby [options] <delimiter> <selections>
Options:
  -h, --help        Print help text
  -v, --version     Print version number
  -i, --input=<FILE>              Provide an input file
  -o, --output=<FILE>             Write output to a file
  -d, --delimiter=<REGEX>         Specify the delimiter to use
  -j, --join=<STRING|HEX|KEYWORD> Join each selection with string or hex or delimiter
  -p, --placeholder=<STRING|HEX>  Inserts placeholder for invalid selections
  --per-line                      Processes the input line by line (default)
  -w, --whole-string              Processes the input as a single string, rather than each line separately
  -z, --zero-terminated           Processes the input as zero-terminated strings
  -f, --fields                    Select fields split by delimiter (default)
  -b, --bytes                     Select bytes from the input
  -c, --characters                Select characters from the input
  -a, --align=<MODE>              Align output (left|right|squash|none)
  --count                         Return the number of results after splitting
  --invert                        Inverts the chosen selection
  -e, --skip-empty                Skips empty fields when indexing or counting
  -E, --no-skip-empty             Does not skip empty fields when indexing or counting
  --strict                        Shorthand for all strict features
  --no-strict                     Does not enforce strict features
  --strict-bounds                 Emit error if range is out of bounds
  --no-strict-bounds              Does not emit error if range is out of bounds
  --strict-return                 Emit error if there is no result
  --no-strict-return              Does not emit error if there is no result
  --strict-range-order            Emit error if start of a range is greater than the end
  --no-strict-range-order         Does not emit error if start of a range is greater than the end
  --strict-utf8                   Emit error on invalid UTF-8 sequences
  --no-strict-utf8                Does not emit error on invalid UTF-8 sequences
`
}
