package chat

// Greeting opens every new session before the visitor has typed anything.
const Greeting = "Halo! Selamat datang di Ruang Tenang. Saya di sini untuk mendengarkan dan memberikan dukungan. Bagaimana perasaan Anda hari ini?"

// Affirmations is the fixed corpus chat replies are drawn from, uniformly at
// random. The product intentionally ships canned support lines instead of a
// language model.
var Affirmations = []string{
	"Terima kasih sudah berbagi. Ingat, kamu lebih kuat dari yang kamu kira. 💪",
	"Setiap langkah kecil adalah sebuah kemajuan. Aku bangga padamu. 🌱",
	"Perasaan ini akan berlalu. Kamu memiliki kekuatan untuk melewati ini. 🌈",
	"Tidak apa-apa untuk tidak baik-baik saja. Yang penting kamu berusaha. ❤️",
	"Kamu sudah melakukan yang terbaik hari ini, dan itu sudah cukup. ⭐",
	"Setiap hari adalah kesempatan baru untuk mulai lagi. Semangat! 🌅",
	"Kamu berharga dan kehadiranmu di dunia ini berarti. 🌟",
	"Ambil napas dalam-dalam. Kamu mampu melewati ini satu langkah pada satu waktu. 🌸",
	"Perasaanmu valid dan penting. Terima kasih sudah percaya untuk berbagi. 🤗",
	"Kamu tidak sendirian dalam perjuangan ini. Kami di sini untuk mendukungmu. 🤝",
}
