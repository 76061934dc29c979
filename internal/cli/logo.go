package cli

const asciiLogo = `                         _                 _
  ___  ___ ___  _ __ ___ | | ___   __ _  __| |
 / _ \/ __/ _ \| '_ ` + "`" + ` _ \| |/ _ \ / _` + "`" + ` |/ _` + "`" + ` |
|  __/ (_| (_) | | | | | | | (_) | (_| | (_| |
 \___|\___\___/|_| |_| |_|_|\___/ \__,_|\__,_|`
