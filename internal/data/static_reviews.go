// Package data holds the compiled-in review catalog. These reviews
// ship with the binary, are seeded into the store on migration, and
// are not editable through the admin API.
package data

import (
	"github.com/smreview/smreview-backend/internal/app/model"
)

// StaticReviews returns a fresh copy of the built-in catalog so
// callers can attach counters and comments without sharing state.
func StaticReviews() []model.Review {
	reviews := make([]model.Review, len(catalog))
	copy(reviews, catalog)
	for i := range reviews {
		reviews[i].Static = true
		reviews[i].Comments = []model.Comment{}
	}
	return reviews
}

var catalog = []model.Review{
	{
		ID:         "coolie",
		Title:      "COOLIE",
		ImageURL:   "https://www.ntvenglish.com/wp-content/uploads/2025/08/Coolie-sales-800x500.jpg",
		Review:     "inka Movie ela vundho detail review lo chudham",
		FirstHalf:  "Starting story setup ni establish chestadu..aaa Tarvata vachhe characters...Rajini entry..Monica song Main Innervel scene high high ante... Anirudh okka Range loo kottedu BGM..Okka okka scene lepedu..",
		SecondHalf: "Second half chaala baaga start avuthadhi..Characters Shifts baaga Raasukunnaru... Madhyalo konchem Track Tappidhi..aa tarvata Pre climax ki set aidhi..Climax High istadhi... Anirudh BGM tho Movie ni Next Level ki  tisukuveledu...",
		Positives:  "Aniruddh BGM💥💥,Loki Direction,Rajini Swag 😎...",
		Negatives:  "Second Half middle Portion loo konchem Baaga Excute chesi vunte bagundedhI..",
		Overall:    "except some portions nakku aite nachindhi guys",
		Rating:     "3.8 STARS",
	},
	{
		ID:         "sir Madam",
		Title:      "SIR MADAM",
		ImageURL:   "https://assetscdn1.paytm.com/images/cinema/sir-madam-cover-b8268b50-5e4a-11f0-955e-b3a7ddd74d55.jpg",
		Review:     "inka Movie ela vundho detail review lo chudham",
		FirstHalf:  "First half..chaala Fun gaa velipoindhi.. First nunchi last daakaa Fun gaa velthu vuntadhi.Hero characterization picha picha gaa vuntadhi.. okka fast screenplay tho run avvutu Vuntadhi overall Decent First half...",
		SecondHalf: "Chala Relastic situations ni screen midha present cheseru..emotions chaala baga blend cheseru.. comedy Matram Next Level especially climax part is hilarious 😂😂...post credit scene too good...",
		Positives:  "Vijay Sethupathi Acting, Heroine performance, Story, screenplay,Fun, Direction 👌",
		Negatives:  "No Negatives ",
		Overall:    "Chaala Bagundhi.. Family tho vellandi Nuvvu kuntu baithaki vastaru...",
		Rating:     "4 STARS",
	},
	{
		ID:         "kingdom",
		Title:      "KINGDOM",
		ImageURL:   "https://cdn.123telugu.com/content/wp-content/uploads/2025/07/kingdom-14.jpg",
		Review:     "inka Movie ela vundho detail review lo chudham",
		FirstHalf:  "First Half..chaala intresting gaa vuntundi.. conflicts, intresting scenes tho engage Chestaru.. vaalu create chesina World building chaala baguntadhi manki kuda chaala twarga connect avvudhi.. without spoken any dialogue..just Hand gesture intervel elevation padutundi Top notch 🔥🔥",
		SecondHalf: "Asalu Movie Eyy etu etho podhi..chaala slow gaa veltu vuntadhi.. Emotions workout kaavu...last minute varaku post production work complete chestu vunte elaghe vuntadhi...okka manchi song ni lepeseru.. aa climax ento😌😌",
		Positives:  "Gautham Direction in First Half,VD Acting....",
		Negatives:  "Second half.. incompleteness feeling in last..Anirudh music kk but dhani ki taggatu scenes padaledu second half loo..",
		Overall:    "it was Average",
		Rating:     "3 STARS",
	},
	{
		ID:         "mahavtara narsimha",
		Title:      "MAHAVATARA NARSIMHA",
		ImageURL:   "https://boxofficeindex.in/wp-content/uploads/2025/07/Mahavatar-Narsimha-1-768x432.webp",
		Review:     "inka Movie ela vundho detail review lo chudham",
		FirstHalf:  "First half Lag cheyakunda direct Story lo ki velthadu...Okka sequence vuntadhi..aa sequence Graphics are Top Notch..aa tarvata Story  based gaa veltuntadhi Movie antha..decent First Half..",
		SecondHalf: "Coming to the second Half...antha okka lekka Last climax portion okka lekka.. literally Gooesubmps vachayi...that visuals,Bgm vere level..waiting For the next Movie From this universe...",
		Positives:  "All positives visuals, making, BGM super 💥 Naaku teliyiani points enno telsukunna..",
		Negatives:  "NO Negatives",
		Overall:    "idhi prathi okkaru chudalsina cinema..super ante..",
		Rating:     "4 STARS",
	},
	{
		ID:         "HHVM",
		Title:      "HARI HARA VEERA MALLU",
		ImageURL:   "https://images.filmibeat.com/img/2022/11/1-1653556615-1667553644.jpg",
		Review:     "inka Movie ela vundho detail review lo chudham",
		FirstHalf:  "First Half Starts very well..Hero Introduction Scene..aa Tarvata Proceedings kuda baguntai...Madhyaloo akkada akkada kk anipinchela vuntadhi...Pre intervel Twist bagundhi.. Intervel Kuda baguntadhi.. overall First Half Bagundhi..",
		SecondHalf: "Second half Asalu Story Gurinchi kasepu pakkana pedethe.. Recent Times lo worst VFX Chusenu eee Movie loo..entha bad Graphics ante easy gaa Telesi pothundi...Inka story vishyaniki vaste edo chustanamu ante chustunam anatu vuntadhi...",
		Positives:  "Keeravani soul pettedu Movie ki..thana BGM chaala Normal scenes ki kuda High icche laa kottedu.. Pawan Kalyan as usual did well..",
		Negatives:  "2nd half,boring scenes..bad vfx..konni scenes aite idhi Ai tho generate chesaru Anni easy gaa telisi pothundi...",
		Overall:    "it's a Average movie",
		Rating:     "3 STARS",
	},
	{
		ID:         "oh bhama ayyo rama",
		Title:      "OH BHAMA AYYO RAMA",
		ImageURL:   "https://filmyfocus.com/wp-content/uploads/2025/04/Profile1-46.png",
		Review:     "inka Movie ela vundho detail review lo chudham",
		FirstHalf:  "First Half vishiyaniki vaste Asalu Director em chepalli anukuntunado em ardham kaala.. Movie lo expect songs and bgm...Inka em ledu eppudo Old movie chustunna feeling vachindhi naaku aite...",
		SecondHalf: "coming to the second half edo ala ala velipotha vuntadhi...okka engaging scene vundadu.emotions and scenes emi workout kaadu..predictable gaa vuntundhi max story",
		Positives:  "Songs, Cinematography, Malavika Manoj.. Parthi Frame chaala grander gaa kanapadutindhi...",
		Negatives:  "Anni negatives eyy moive loo..inka em cheppali",
		Overall:    "it's Below Average movie",
		Rating:     "2.8 STARS",
	},
	{
		ID:         "kannappa",
		Title:      "KANNAPPA",
		ImageURL:   "https://moviemonarch.in/wp-content/uploads/2025/06/Kannappa-Movie-Review.jpg",
		Review:     "kannappa Movie ela vundho detail review lo chudham",
		FirstHalf:  "Movie vishyaniki vaste...we enjoyed a lot sir 🤣🤣..ee madhya kaalam lo Nenu inthala eppudu navuko ledu..idhi Eyy context lo tisukuntaro mee oohake vadilestunanu...aa dialogues aa scenes,aa casting naa booto naa bavishatu...",
		SecondHalf: "First 30 Min Bore kotttadhi.... Prabhas scenes and Shiva Shiva Shankar song and climax baguntadhi ante...Inka em ledu cheppadaniki....",
		Positives:  "Prabhas,shiva shiva shankara song..climax",
		Negatives:  "ilogical scenes and songs..artficial drama and emotions..dilogue delivery what not everthing",
		Overall:    "it's Below Average",
		Rating:     "2.8 STARS",
	},
	{
		ID:         "kubera",
		Title:      "KUBERA",
		ImageURL:   "https://www.pinkvilla.com/images/2024-09/1594720010_kubera-poster.jpg",
		Review:     "kubera Movie ela vundho detail review lo chudham",
		FirstHalf:  "First short lo nee idhi Shekar kammula movie naa anipistadhi....Next jaragaboyee Proceedings interesting gaa vuntai... First Half It's like a Journey laa gaa real gaa jarugutunatu vuntadhi.... Heroine entry deggara nundi inka baaga proceed avutuntdhi Movie....",
		SecondHalf: "It was Good man😍.....naaku baaga nachindhi Heroine tho vunde Conversational Scenes..and Scenes Playoffs and drama Emotions... Director Shekar kammula Wrote Not Screenplay..he wrote Scenes Play..everything work well",
		Positives:  "Dhanush Acting... What a Man he was.. literally aaa Charcter lo Munighi poyyedu...And Also Rashmika kuda...And Nagarjuna chaala Rojjula Tarvata Fantastic Role padindhi... DSP Music Ramp 🤙🤙Ante.",
		Negatives:  "Climax inka konchem baaga end chesunte bagundu anipinchindi",
		Overall:    "Bagundhi..I loved It❤....",
		Rating:     "4 STARS",
	},
	{
		ID:         "single",
		Title:      "SINGLE",
		ImageURL:   "https://images.moneycontrol.com/static-mcnews/2025/05/20250509073125_Sree-Vishnu-starrer-Single-received-good-response-from-the-audience.png?impolicy=website&width=770&height=431",
		Review:     "Single Movie ela vundho detail review lo chudham",
		FirstHalf:  "Movie Starting To interval okka scene kuda bore kotadhu...edo okka comedy punches, scenes and sree Vishnu one liners tho entertain avuthu vuntham... Story Trailer lo chupinchadhe ..overall very good first half",
		SecondHalf: "Second half kuda same ante funny scenes... Asalu Sree vishnu One man show anni Cheppali... Pakkana vennala Kishore vunna konni konni scenes lo dominate chesedu kuda..pre climax slight emotion pedataru..climax is back to fun zone...",
		Positives:  "Sree Vishnu performance and dialogues, vennela Kishore comedy...",
		Negatives:  "NO NEGATIVES....Vaalu edhi aite movie lo vuntadhi anni cheppi audience ni prepare chesearo.. Adhe delivery cheseru..",
		Overall:    "it's a Youthful entertainer and worth watch movie",
		Rating:     "4 STARS",
	},
	{
		ID:         "robinhood",
		Title:      "ROBINHOOD",
		ImageURL:   "https://th.bing.com/th/id/OIP.-ONs1V3ROAS26n-aPemlNQHaLH?rs=1&pid=ImgDetMain",
		Review:     "Robinhood movie ela vundho detail review lo chudham",
		FirstHalf:  "First half vishayaniki vaste...it was okk...Time pass gaa veltu vuntadhi.. Comdey scenes..songs good but Edo miss avutundhe anna feeling kaluguthadhi....",
		SecondHalf: "Second half edo flat gaa sagutunna feeling vastadhi...okka clarity vundadhu.... sambandam lekkunda songs vastuntaie...but last 10 Min was Good..chaala baga rasukunadu director...But overall Movie execution konchem tedha kottindhi...",
		Positives:  "Some comedy scenes,sreleela beauty....",
		Negatives:  "Song's placements,some boring scenes..in first and second half",
		Overall:    "It's average",
		Rating:     "3 STARS",
	},
	{
		ID:         "madsquare",
		Title:      "MAD SQUARE",
		ImageURL:   "https://assets-in.bmscdn.com/iedb/movies/images/mobile/thumbnail/xlarge/mad-square-et00435629-1740499947.jpg",
		Review:     "MAD SQUARE movie ela vundho detail review lo chudham",
		FirstHalf:  "Starting Nundi... Comdey Non stop gaa vastuvuntadhi...good songs.. especially single liners was terrific...pre intervel okkate parledhu anipichelavuntadhi..",
		SecondHalf: "Second half started on a good Note....gap lekunda fun generate avuthu vuntadhi....songs kaani.. especially laddu charcter was hilarious 😆...Pre climax and climax was super...",
		Positives:  "Mad characterizations...craziest one liners...Song's and BGM",
		Negatives:  "NO Negatives",
		Overall:    "Worth watch movie... Friends andhari tho Kalisi velli enjoy Chesi randi....",
		Rating:     "4 STARS",
	},
}
