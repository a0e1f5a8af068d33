package help

const ColdstartYAML = `# hashtag-tally Quick Start

pipeline:
  map: "Scan one day's zip of tweets into <day>.zip.lang and <day>.zip.country"
  reduce: "Sum several .lang (or .country) aggregates into one file"
  lineplot: "Per-day totals of hashtags across daily aggregates"
  topn: "Top languages or countries for one hashtag in one aggregate"

commands:
  map_one_day: |
    hashtag-tally map --input_path geoTwitter20-01-01.zip --output_folder outputs

  map_all_days: |
    for f in /data/geoTwitter20-*.zip; do
      hashtag-tally map --input_path "$f" --output_folder outputs
    done

  custom_keywords: |
    # keywords.yaml:
    #   keywords: ["#flu", "#cough"]
    hashtag-tally map --input_path day.zip --keywords keywords.yaml

  detect_undetermined: |
    hashtag-tally map --input_path day.zip --detect-undetermined

  reduce: |
    hashtag-tally reduce --output_path reduced.lang outputs/*.lang

  lineplot: |
    hashtag-tally lineplot --keys "#coronavirus" --keys "#flu" outputs/*.lang
    hashtag-tally lineplot --keys "#coronavirus,#flu" outputs/*.lang

  lineplot_undated_files: |
    hashtag-tally lineplot --positional --keys "#flu" day1.lang day2.lang

  topn: |
    hashtag-tally topn --input_path reduced.lang --key "#coronavirus"
    hashtag-tally topn --input_path reduced.country --key "#coronavirus" --percent

notes:
  - "Keywords match as lower-case substrings; each tweet counts once per keyword"
  - "_all counts every tweet once, matched or not"
  - "lineplot reads the day from YY-MM-DD in each file name unless --positional is set"
  - "--keys takes one value per flag: repeat it or separate keys with commas"
  - "Any malformed tweet aborts map before anything is written"
`
