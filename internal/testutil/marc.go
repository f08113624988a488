package testutil

// EidAlAdhaRecord is a MARC21 record whose directory lists 001, 003 and 005
// after the data fields. It carries an 852 copy with barcode "T 32889" and
// subject headings with characters outside Latin-1.
const EidAlAdhaRecord = "" +
	"01924cam a2200409 a 4500008004100000010001700041020001800058035001800076040003000094050002300124082001200147100002100159245003800180260006400218300003300282490003000315500003400345504005900379510002700438520039300465521000900858521003500867650003100902650002900933650001800962776018100980830004801161900001201209940005201221035002301273005001701296001000601313003000601319526005701325526005601382852007601438\x1e" +
	"210320s2022    mnua   b b    001 0 eng  \x1e" +
	"  \x1fa  2021012623\x1e" +
	"  \x1fa9781663908353\x1e" +
	"  \x1fa(ICrlF)1992KQ\x1e" +
	"  \x1faDLC\x1fbeng\x1fcDLC\x1fdDLC\x1fdICrlF\x1e" +
	"00\x1faBP186.6\x1fb.M64 2022\x1e" +
	"00\x1fa297\x1f223\x1e" +
	"1 \x1faMohamed, Mariam.\x1e" +
	"10\x1faEid al-Adha /\x1fcby Mariam Mohamed.\x1e" +
	"  \x1faNorth Mankato, Minn. :\x1fbPebble, a Capstone imprint,\x1fc[2022]\x1e" +
	"  \x1fa32 p. :\x1fbcol. ill. ;\x1fc24 cm.\x1e" +
	"1 \x1faTraditions & celebrations\x1e" +
	"  \x1fa\"Pebble explore\"--Back cover.\x1e" +
	"  \x1faIncludes bibliographical references (p. 31) and index.\x1e" +
	"3 \x1faBooklist, January 2022\x1e" +
	"  \x1fa\"Eid al-Adha is about celebrating! It is a Muslim festival remembering the sacrifice Ibrahim was willing to make. People mark the festival with prayer, visiting family, and gifts. Some people sacrifice an animal and share the meat with their community. Readers will discover how a shared holiday can have multiple traditions and be celebrated in all sorts of ways\"--Provided by publisher.\x1e" +
	"0 \x1fa3.4.\x1e" +
	"2 \x1faK-3\x1fbFollett School Solutions.\x1e" +
	" 7\x1fa\u02bf\u012ad al-A\u1e0d\u1e25\u0101.\x1f2sears\x1e" +
	" 7\x1faIslamic holidays.\x1f2sears\x1e" +
	" 7\x1faIslam.\x1f2sears\x1e" +
	"08\x1fiOnline version:\x1faMohamed, Mariam,\x1ftEid al-Adha\x1fdNorth Mankato, Minnesota : Pebble Explore is published by Pebble, an imprint of Capstone, 2022.\x1fz9781663908322\x1fw(DLC) 2021012624\x1e" +
	" 0\x1faTraditions and celebrations (Pebble (Firm))\x1e" +
	"  \x1fa297 MOH\x1e" +
	"2 \x1fa3.4\x1fbK-3\x1fd05/04/23\x1fsBooklist, January 2022\x1fvFSS\x1e" +
	"  \x1fa(ICrlF)fol20166955\x1e" +
	"20230614114708.0\x1e" +
	"58694\x1e" +
	"39012\x1e" +
	"  \x1faAccelerated Reader AR\x1fbLG\x1fc4.0\x1fd0.5\x1fz516595EN\x1f5SMEDS\x1e" +
	"  \x1faAccelerated Reader AR\x1fbLG\x1fc4.0\x1fd0.5\x1fz516595.\x1f5SMEDS\x1e" +
	"  \x1fpT 32889\x1faSMEDS\x1f923.54USD\x1fxCOPYID:43747\x1fxFSC@aRegular@c20230504\x1fh297 MOH\x1e"

// SirLadybugRecord is an RDA record with a 264 imprint, a series statement
// and an 852 copy without a barcode.
const SirLadybugRecord = "" +
	"02631pam  2200697 i 4500001001300000003000600013005001700019008004100036020002700077040002700104082001000131099001000141100003000151245005300181250001900234264009400253264001900347300004500366336002600411337002800437338002700465490002100492510002500513520023300538521001400771521001600785526006100801586003700862650003600899650004300935650003900978650004901017650004201066650002001108650004801128650004001176650005201216650001901268650002601287650002201313650003201335650002501367650002001392650002601412650002301438650003401461650002601495650003301521650002901554650003901583650003201622650002701654650003801681650003001719650004101749655003401790655003201824655002701856800003901883852001101922\x1e" +
	"mlg75994105 \x1e" +
	"KyBuM\x1e" +
	"20220719000000.0\x1e" +
	"220715t20222022nyua   b 6    000 1 eng d\x1e" +
	"  \x1fa9780063069091 :\x1fc16.72\x1e" +
	"  \x1faKyBuM\x1fbeng\x1ferda\x1fcKyBuM\x1e" +
	"00\x1faE\x1f223\x1e" +
	"  \x1faE TAB\x1e" +
	"1 \x1faTabor, Corey R.,\x1feauthor.\x1e" +
	"10\x1faSir Ladybug and the queen bee /\x1fcCorey R. Tabor.\x1e" +
	"  \x1faFirst edition.\x1e" +
	" 1\x1faNew York, NY :\x1fbBalzer + Bray, HarperAlley, imprints of HarperCollins Publishers,\x1fc[2022]\x1e" +
	" 4\x1fccopyright 2022\x1e" +
	"  \x1fa62 pages :\x1fbcolor illustrations ;\x1fc24 cm\x1e" +
	"  \x1fatext\x1fbtxt\x1f2rdacontent\x1e" +
	"  \x1faunmediated\x1fbn\x1f2rdamedia\x1e" +
	"  \x1favolume\x1fbnc\x1f2rdacarrier\x1e" +
	"1 \x1faSir Ladybug ;\x1fv2\x1e" +
	"3 \x1faJunior Library Guild\x1e" +
	"  \x1fa\"Sir Ladybug--the duke of the dandelion patch, champion of truth and justice--is on a new quest!  With his herald, Pell, and his trusty squire, Sterling, he will have to be extra-clever to outwit the mean Queen Bee\"--Back cover.\x1e" +
	"1 \x1faAges 6-8.\x1e" +
	"2 \x1faGrades 1-3.\x1e" +
	"0 \x1faAccelerated Reader\x1fbLower Grades\x1fc2.4\x1fd0.5\x1fzquiz: 515672\x1e" +
	"  \x1faA Junior Library Guild selection\x1e" +
	" 0\x1faBees\x1fvComic books, strips, etc.\x1e" +
	" 0\x1faCooperation\x1fvComic books, strips, etc.\x1e" +
	" 0\x1faCourage\x1fvComic books, strips, etc.\x1e" +
	" 0\x1faCreative thinking\x1fvComic books, strips, etc.\x1e" +
	" 0\x1faFriendship\x1fvComic books, strips, etc.\x1e" +
	" 0\x1faGraphic novels.\x1e" +
	" 0\x1faHelping behavior\x1fvComic books, strips, etc.\x1e" +
	" 0\x1faLadybugs\x1fvComic books, strips, etc.\x1e" +
	" 0\x1faQuests (Expeditions)\x1fvComic books, strips, etc.\x1e" +
	" 1\x1faBees\x1fvFiction.\x1e" +
	" 1\x1faCooperation\x1fvFiction.\x1e" +
	" 1\x1faCourage\x1fvFiction.\x1e" +
	" 1\x1faCreative thinking\x1fvFiction.\x1e" +
	" 1\x1faFriendship\x1fvFiction.\x1e" +
	" 1\x1faGraphic novels.\x1e" +
	" 1\x1faHelpfulness\x1fvFiction.\x1e" +
	" 1\x1faLadybugs\x1fvFiction.\x1e" +
	" 1\x1faVoyages and travels\x1fvFiction.\x1e" +
	" 7\x1faBees\x1fvFiction.\x1f2sears\x1e" +
	" 7\x1faCooperation\x1fvFiction.\x1f2sears\x1e" +
	" 7\x1faCourage\x1fvFiction.\x1f2sears\x1e" +
	" 7\x1faCreative thinking\x1fvFiction.\x1f2sears\x1e" +
	" 7\x1faFriendship\x1fvFiction.\x1f2sears\x1e" +
	" 7\x1faGraphic novels.\x1f2sears\x1e" +
	" 7\x1faHelping behavior\x1fvFiction.\x1f2sears\x1e" +
	" 7\x1faLadybugs\x1fvFiction.\x1f2sears\x1e" +
	" 7\x1faVoyages and travels\x1fvFiction.\x1f2sears\x1e" +
	" 7\x1faComics (Graphic works)\x1f2lcgft\x1e" +
	" 7\x1faFunny animal comics.\x1f2lcgft\x1e" +
	" 7\x1faGraphic novels.\x1f2lcgft\x1e" +
	"1 \x1faTabor, Corey R.\x1ftSir Ladybug ;\x1fv2.\x1e" +
	"  \x1fhE\x1fiTAB\x1e"
