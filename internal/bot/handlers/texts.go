package handlers

// Static reply texts. The Markdown emphasis is rendered by Telegram's
// legacy Markdown mode.
const (
	MsgWelcome = "Welcome to the helper bot for *AEVO*. Here you will find a lot of interesting information about this platform and more.\n\n💻 For a list of functions, click on - /help"

	MsgHelp = "🌐 All commands that the bot currently has: \n\n1) 📍*About* - useful information about the AEVO project.\n\n2) 🖌*Links* - official links to AEVO social networks and the website to avoid scams.\n\n3) ⚡*Assets* - list of cryptocurrencies that are available for trading on AEVO.\n\n4) 📈*Price* - view the price of a specific cryptocurrency in real time.\n\n 5) 📊*Funding* - finding out information about funding on the market."

	MsgAbout = "*Aevo* is a high-performance decentralized options exchange.\n\n🔥 The exchange operates on a specialized version of the *Ethereum Virtual Machine (EVM)*.\n\n💻 It manages an off-chain order book, and once orders are matched, transactions are executed and settled using smart contracts.\n\n📚 In July 2023, a decisive vote took place, approving RGP-33, which advocated for the integration of *Ribbon* into *Aevo*.\n\n👨‍💻 This near-unanimous decision signifies the alignment of stakeholders' visions and the direction of Aevo's team efforts."

	MsgLinks = "Below are links to official AEVO data:"

	MsgPricePrompt = "Write the short name of the cryptocurrency for which you want to find out the price on the Aevo platform (BTC, ETH and others)"

	MsgFundingPrompt = "Write the short name of the cryptocurrency for which you want to find out the funding on the Aevo platform (BTC, ETH and others)"

	MsgPleaseWait = "We are collecting data, please wait..."

	MsgFailure = "Oops, something went wrong. Try again!"

	MsgIdle = "You haven't initiated any process. Type '📈Price' or '📊Funding' to get started."

	MsgCancelled = "Operation cancelled. Nothing is pending now."
)
