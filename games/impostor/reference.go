/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package impostor

// Reference catalog categories.
const (
	Lugares   Category = "lugares"
	Comida    Category = "comida"
	Objetos   Category = "objetos"
	Animales  Category = "animales"
	Cantantes Category = "cantantes"
	Deportes  Category = "deportes"
)

var referenceCategories = []CategoryDef{
	{
		Key:  Lugares,
		Icon: "🏖️",
		Words: []string{
			"París", "Londres", "Roma", "Tokio", "Nueva York", "Barcelona", "Berlín", "Ámsterdam",
			"Miami", "Los Ángeles", "Machu Picchu", "Gran Cañón", "Torre Eiffel", "Estatua Libertad", "Coliseo", "Muralla China",
			"Taj Mahal", "Cristo Redentor", "Pirámides", "Stonehenge", "Playa", "Montaña", "Bosque", "Desierto",
			"Isla", "Volcán", "Río", "Cascada", "Lago", "Selva", "Valle", "Cueva",
			"Pantano", "Cañón", "Arrecife", "Costa Rica", "México", "Argentina", "Brasil", "Chile",
			"Colombia", "Perú", "España", "Italia", "Francia", "Canadá", "Japón", "China",
			"India", "Australia", "Alemania", "Inglaterra", "Rusia", "Corea", "Egipto", "Guanacaste",
			"Puntarenas", "Limón", "Cartago", "San José", "Arenal", "Manuel Antonio", "Tortuguero", "Monteverde",
			"Jacó",
		},
		Clues: map[string]string{
			"París": "Romance",
			"Londres": "Niebla",
			"Roma": "Eterno",
			"Tokio": "Futuro",
			"Nueva York": "Vertical",
			"Barcelona": "Gaudí",
			"Berlín": "Muro",
			"Ámsterdam": "Canales",
			"Miami": "Sol",
			"Los Ángeles": "Sueños",
			"Machu Picchu": "Incas",
			"Gran Cañón": "Abismo",
			"Torre Eiffel": "Hierro",
			"Estatua Libertad": "Antorcha",
			"Coliseo": "Gladiadores",
			"Muralla China": "Dragón",
			"Taj Mahal": "Amor",
			"Cristo Redentor": "Abrazo",
			"Pirámides": "Eternidad",
			"Stonehenge": "Misterio",
			"Playa": "Arena",
			"Montaña": "Altura",
			"Bosque": "Verde",
			"Desierto": "Calor",
			"Isla": "Aislamiento",
			"Volcán": "Fuego",
			"Río": "Fluir",
			"Cascada": "Caída",
			"Lago": "Calma",
			"Selva": "Vida",
			"Costa Rica": "Puravida",
			"México": "Azteca",
			"Argentina": "Tango",
			"Brasil": "Carnaval",
			"Chile": "Largo",
			"Colombia": "Café",
			"Perú": "Incas",
			"España": "Fiesta",
			"Italia": "Dolce",
			"Francia": "Elegancia",
			"Guanacaste": "Playas",
			"Puntarenas": "Puerto",
			"Limón": "Caribe",
			"Cartago": "Ruinas",
			"San José": "Capital",
			"Arenal": "Volcán",
			"Manuel Antonio": "Parque",
			"Tortuguero": "Tortugas",
			"Monteverde": "Nubes",
			"Jacó": "Surf",
		},
	},
	{
		Key:  Comida,
		Icon: "🍕",
		Words: []string{
			"Gallo Pinto", "Casado", "Olla Carne", "Chifrijo", "Ceviche", "Tamal", "Arroz Leche", "Tres Leches",
			"Patacones", "Chorreadas", "Picadillo", "Arroz Pollo", "Pozol", "Sopa Negra", "Enyucados", "Prestiños",
			"Cajetas", "Melcochas", "Churchill", "Granizado", "Pizza", "Hamburguesa", "Sushi", "Tacos",
			"Pasta", "Ensalada", "Helado", "Paella", "Empanada", "Burrito", "Hot Dog", "Sandwich",
			"Papas Fritas", "Pollo Frito", "Carne Asada", "Costillas", "Alitas", "Nachos", "Quesadilla", "Enchiladas",
			"Lasagna", "Ramen", "Curry", "Falafel", "Hummus", "Tostadas", "Flan", "Brownie",
			"Waffles", "Crepes", "Panqueques", "Donas", "Galletas", "Pastel", "Pie", "Muffins",
			"Tiramisú", "Cheesecake", "Macarrones", "Éclair", "Café", "Chocolate", "Jugo Natural", "Horchata",
			"Refresco", "Agua", "Té", "Leche", "Batido", "Smoothie", "Fresco", "Agua Dulce",
			"Pinolillo", "Imperial", "Cerveza", "Vino", "Limonada", "Naranjada", "Pipas", "Copo",
		},
		Clues: map[string]string{
			"Gallo Pinto": "Mañana",
			"Casado": "Completo",
			"Olla Carne": "Caldo",
			"Chifrijo": "Bar",
			"Ceviche": "Limón",
			"Tamal": "Navidad",
			"Arroz Leche": "Postre",
			"Tres Leches": "Húmedo",
			"Patacones": "Plátano",
			"Chorreadas": "Maíz",
			"Pizza": "Italia",
			"Hamburguesa": "Rápida",
			"Sushi": "Japón",
			"Tacos": "México",
			"Pasta": "Italiana",
			"Ensalada": "Verde",
			"Helado": "Frío",
			"Paella": "España",
			"Empanada": "Rellena",
			"Burrito": "Enrollado",
			"Lasagna": "Capas",
			"Ramen": "Sopa",
			"Curry": "Especias",
			"Falafel": "Garbanzo",
			"Hummus": "Pasta",
			"Tostadas": "Crujiente",
			"Flan": "Caramelo",
			"Brownie": "Chocolate",
			"Waffles": "Cuadros",
			"Crepes": "Fina",
			"Café": "Mañana",
			"Chocolate": "Cacao",
			"Jugo Natural": "Fruta",
			"Horchata": "Arroz",
			"Refresco": "Gas",
			"Agua": "Vital",
			"Té": "Infusión",
			"Leche": "Blanca",
			"Batido": "Mezcla",
			"Smoothie": "Saludable",
		},
	},
	{
		Key:  Objetos,
		Icon: "📱",
		Words: []string{
			"Teléfono", "Computadora", "Tablet", "Audífonos", "Cargador", "Reloj", "Lentes", "Mochila",
			"Paraguas", "Llaves", "Billetera", "Cartera", "Cinturón", "Collar", "Anillo", "Pulsera",
			"Aretes", "Bufanda", "Sombrero", "Camisa", "Libro", "Cuaderno", "Lápiz", "Bolígrafo",
			"Marcador", "Tijeras", "Pegamento", "Regla", "Calculadora", "Sacapuntas", "Borrador", "Engrapadora",
			"Perforadora", "Crayones", "Acuarelas", "Pincel", "Compás", "Cartuchera", "Folder", "Resaltador",
			"Cama", "Mesa", "Silla", "Sofá", "Escritorio", "Estante", "Lámpara", "Espejo",
			"Almohada", "Manta", "Colchón", "Closet", "Cajonera", "Librero", "Mecedora", "Televisor",
			"Ventilador", "Cortinas", "Alfombra", "Cuadro", "Cuchara", "Tenedor", "Cuchillo", "Plato",
			"Vaso", "Taza", "Olla", "Sartén", "Refrigerador", "Microondas", "Licuadora", "Horno",
			"Cafetera", "Tostadora", "Batidora", "Exprimidor", "Escurridor", "Tabla Cortar", "Colador", "Tetera",
			"Pelota", "Raqueta", "Bicicleta", "Patines", "Cuerda", "Pesas", "Gorra", "Zapatos",
			"Camiseta", "Shorts", "Tenis", "Botas", "Sandalias", "Pantuflas", "Traje Baño", "Toalla",
			"Cepillo", "Peine", "Secadora", "Plancha",
		},
		Clues: map[string]string{
			"Teléfono": "Voz",
			"Computadora": "Código",
			"Tablet": "Toque",
			"Audífonos": "Privado",
			"Cargador": "Vida",
			"Reloj": "Circulo",
			"Lentes": "Enfoque",
			"Mochila": "Viaje",
			"Paraguas": "Protección",
			"Llaves": "Acceso",
			"Libro": "Mundos",
			"Cuaderno": "Secretos",
			"Lápiz": "Trazo",
			"Bolígrafo": "Fluir",
			"Marcador": "Resalte",
			"Tijeras": "Separar",
			"Pegamento": "Unión",
			"Regla": "Línea",
			"Calculadora": "Lógica",
			"Sacapuntas": "Agudeza",
			"Cama": "Sueños",
			"Mesa": "Encuentro",
			"Silla": "Pausa",
			"Sofá": "Comodidad",
			"Escritorio": "Creación",
			"Estante": "Orden",
			"Lámpara": "Iluminación",
			"Espejo": "Verdad",
			"Almohada": "Nube",
			"Manta": "Abrazo",
			"Cuchara": "Cóncavo",
			"Tenedor": "Púas",
			"Cuchillo": "Filo",
			"Plato": "Circular",
			"Vaso": "Cilíndrico",
			"Taza": "Asa",
			"Olla": "Hondo",
			"Sartén": "Plano",
			"Refrigerador": "Frío",
			"Microondas": "Rápido",
			"Pelota": "Esfera",
			"Raqueta": "Golpe",
			"Bicicleta": "Ruedas",
			"Patines": "Deslizar",
			"Cuerda": "Salto",
			"Pesas": "Fuerza",
			"Gorra": "Visera",
			"Zapatos": "Pies",
			"Camiseta": "Algodón",
			"Shorts": "Corto",
		},
	},
	{
		Key:  Animales,
		Icon: "🐶",
		Words: []string{
			"Perro", "Gato", "Pájaro", "Pez", "Conejo", "Hamster", "Tortuga", "Iguana",
			"Caballo", "Vaca", "Cerdo", "Gallina", "Oveja", "Cabra", "Burro", "Pato",
			"Ganso", "Pavo", "Loro", "Canario", "León", "Tigre", "Elefante", "Jirafa",
			"Mono", "Cebra", "Hipopótamo", "Rinoceronte", "Cocodrilo", "Canguro", "Oso", "Lobo",
			"Zorro", "Leopardo", "Pantera", "Guepardo", "Gorila", "Orangután", "Lémur", "Koala",
			"Delfín", "Ballena", "Tiburón", "Pulpo", "Medusa", "Estrella Mar", "Caballito Mar", "Tortuga Marina",
			"Foca", "Pingüino", "Morsa", "Mantarraya", "Langosta", "Cangrejo", "Camarón", "Almeja",
			"Coral", "Atún", "Salmón", "Anguila", "Águila", "Búho", "Colibrí", "Guacamaya",
			"Tucán", "Quetzal", "Gaviota", "Cisne", "Flamenco", "Pelícano", "Halcón", "Cuervo",
			"Pavo Real", "Avestruz", "Cigüeña", "Paloma", "Gorrión", "Perezoso", "Jaguar", "Puma",
			"Mariposa", "Abeja", "Hormiga", "Araña", "Escarabajo", "Mariquita", "Saltamontes", "Grillo",
			"Libélula", "Mosquito", "Mosca", "Avispa", "Cucaracha", "Luciérnaga", "Caracol", "Lombriz",
			"Rana", "Sapo", "Serpiente", "Lagartija",
		},
		Clues: map[string]string{
			"Perro": "Lealtad",
			"Gato": "Independencia",
			"Pájaro": "Volar",
			"Pez": "Nadar",
			"Conejo": "Saltar",
			"Hamster": "Rueda",
			"Tortuga": "Lento",
			"Iguana": "Escamas",
			"Caballo": "Veloz",
			"Vaca": "Leche",
			"León": "Rey",
			"Tigre": "Rayas",
			"Elefante": "Grande",
			"Jirafa": "Alto",
			"Mono": "Árbol",
			"Cebra": "Blanco",
			"Hipopótamo": "Agua",
			"Rinoceronte": "Cuerno",
			"Cocodrilo": "Dientes",
			"Canguro": "Salto",
			"Delfín": "Inteligente",
			"Ballena": "Gigante",
			"Tiburón": "Aleta",
			"Pulpo": "Tentáculos",
			"Medusa": "Transparente",
			"Estrella Mar": "Cinco",
			"Caballito Mar": "Cola",
			"Tortuga Marina": "Mar",
			"Foca": "Aplauso",
			"Pingüino": "Hielo",
			"Águila": "Vuelo",
			"Búho": "Noche",
			"Colibrí": "Pequeño",
			"Guacamaya": "Colores",
			"Tucán": "Pico",
			"Quetzal": "Plumas",
			"Gaviota": "Mar",
			"Cisne": "Elegante",
			"Flamenco": "Rosa",
			"Pelícano": "Bolsas",
			"Mariposa": "Alas",
			"Abeja": "Miel",
			"Hormiga": "Trabajo",
			"Araña": "Telaraña",
			"Escarabajo": "Cascarón",
			"Mariquita": "Puntos",
			"Saltamontes": "Verde",
			"Grillo": "Canto",
			"Libélula": "Alas",
			"Mosquito": "Picar",
		},
	},
	{
		Key:  Cantantes,
		Icon: "🎤",
		Words: []string{
			"Shakira", "Bad Bunny", "Karol G", "Daddy Yankee", "J Balvin", "Maluma", "Ozuna", "Anuel AA",
			"Nicky Jam", "Wisin Y Yandel", "Rauw Alejandro", "Myke Towers", "Jhay Cortez", "Sech", "Farruko", "Taylor Swift",
			"Drake", "Ariana Grande", "Ed Sheeran", "Billie Eilish", "The Weeknd", "Dua Lipa", "Harry Styles", "Bruno Mars",
			"Post Malone", "Travis Scott", "Eminem", "Kanye West", "Kendrick Lamar", "SZA", "Beyoncé", "Rihanna",
			"Adele", "Coldplay", "Maroon 5", "Katy Perry", "Lady Gaga", "Justin Bieber", "Shawn Mendes", "Camila Cabello",
			"Miley Cyrus", "Selena Gomez", "Demi Lovato", "The Chainsmokers", "Marshmello", "Ricardo Arjona", "Juanes", "Carlos Vives",
			"Fonseca", "Andrés Cepeda", "Jesse Joy", "Morat", "Sebastián Yatra", "Maná", "Café Tacvba", "Reik",
			"Sin Bandera", "Camilo", "Manuel Turizo", "Grupo Frontera", "Selena", "Jenni Rivera", "Ana Gabriel", "Luis Miguel",
			"Chayanne", "Ricky Martin", "Enrique Iglesias", "Gloria Estefan", "Marc Anthony", "Jennifer Lopez", "Romeo Santos", "Prince Royce",
			"Aventura", "Don Omar", "Tego Calderón",
		},
		Clues: map[string]string{
			"Shakira": "Caderas",
			"Bad Bunny": "Conejo",
			"Karol G": "Bichota",
			"Daddy Yankee": "Gasolina",
			"J Balvin": "Colores",
			"Maluma": "Hawái",
			"Ozuna": "Sombrero",
			"Anuel AA": "Real",
			"Nicky Jam": "Perdón",
			"Wisin Y Yandel": "Rakata",
			"Taylor Swift": "Eras",
			"Drake": "Toronto",
			"Ariana Grande": "Pony",
			"Ed Sheeran": "Ginger",
			"Billie Eilish": "Verde",
			"The Weeknd": "After",
			"Dua Lipa": "Future",
			"Harry Styles": "Fruta",
			"Bruno Mars": "Funk",
			"Post Malone": "Tatuajes",
			"Beyoncé": "Reina",
			"Rihanna": "Umbrella",
			"Adele": "Hello",
			"Coldplay": "Yellow",
			"Maroon 5": "Moves",
			"Katy Perry": "Firework",
			"Lady Gaga": "Poker",
			"Justin Bieber": "Baby",
			"Shawn Mendes": "Señorita",
			"Camila Cabello": "Havana",
			"Ricardo Arjona": "Poeta",
			"Juanes": "Rock",
			"Carlos Vives": "Vallenato",
			"Fonseca": "Romántico",
			"Andrés Cepeda": "Suave",
			"Jesse Joy": "Hermanos",
			"Morat": "Banda",
			"Sebastián Yatra": "Joven",
			"Maná": "Español",
			"Café Tacvba": "Experimental",
			"Selena": "Tejano",
			"Jenni Rivera": "Diva",
			"Ana Gabriel": "Potente",
			"Luis Miguel": "Sol",
			"Chayanne": "Guapo",
			"Ricky Martin": "Movimiento",
			"Enrique Iglesias": "Héroe",
			"Gloria Estefan": "Ritmo",
			"Marc Anthony": "Salsa",
			"Jennifer Lopez": "Triple",
		},
	},
	{
		Key:  Deportes,
		Icon: "⚽",
		Words: []string{
			"Fútbol", "Baloncesto", "Tenis", "Natación", "Ciclismo", "Atletismo", "Boxeo", "Golf",
			"Voleibol", "Béisbol", "Surf", "Skate", "Rugby", "Hockey", "Karate", "Taekwondo",
			"Judo", "Esgrima", "Gimnasia", "Polo", "Messi", "Cristiano Ronaldo", "Neymar", "Mbappé",
			"Haaland", "Lewandowski", "Modric", "Benzema", "Salah", "De Bruyne", "Vinicius Jr", "Pedri",
			"Gavi", "Bellingham", "Kane", "LeBron James", "Michael Jordan", "Kobe Bryant", "Stephen Curry", "Kevin Durant",
			"Giannis", "Shaquille ONeal", "Magic Johnson", "Larry Bird", "Tim Duncan", "Luka Doncic", "Ja Morant", "Jayson Tatum",
			"Damian Lillard", "Anthony Davis", "Rafael Nadal", "Roger Federer", "Novak Djokovic", "Serena Williams", "Naomi Osaka", "Carlos Alcaraz",
			"Andy Murray", "Maria Sharapova", "Iga Swiatek", "Daniil Medvedev", "Venus Williams", "Simona Halep", "Stefanos Tsitsipas", "Alexander Zverev",
			"Casper Ruud", "Usain Bolt", "Michael Phelps", "Simone Biles", "Katie Ledecky", "Allyson Felix", "Eliud Kipchoge", "Floyd Mayweather",
			"Manny Pacquiao", "Canelo Álvarez", "Tyson Fury", "Muhammad Ali", "Mike Tyson", "Serena Williams", "Nadia Comaneci", "Carl Lewis",
		},
		Clues: map[string]string{
			"Fútbol": "Balón",
			"Baloncesto": "Canasta",
			"Tenis": "Raqueta",
			"Natación": "Agua",
			"Ciclismo": "Bici",
			"Atletismo": "Correr",
			"Boxeo": "Guantes",
			"Golf": "Hoyo",
			"Voleibol": "Red",
			"Béisbol": "Bate",
			"Rugby": "Oval",
			"Hockey": "Palo",
			"Surf": "Ola",
			"Skate": "Tabla",
			"Karate": "Arte",
			"Judo": "Caída",
			"Esgrima": "Espada",
			"Gimnasia": "Flexibilidad",
			"Polo": "Caballo",
			"Taekwondo": "Patada",
			"Messi": "Argentina",
			"Cristiano Ronaldo": "Portugal",
			"Neymar": "Brasil",
			"Mbappé": "Francia",
			"Haaland": "Noruega",
			"Lewandowski": "Polonia",
			"Modric": "Croacia",
			"Benzema": "Francia",
			"Salah": "Egipto",
			"De Bruyne": "Bélgica",
			"LeBron James": "Lakers",
			"Michael Jordan": "Bulls",
			"Kobe Bryant": "Mamba",
			"Stephen Curry": "Warriors",
			"Kevin Durant": "Nets",
			"Giannis": "Bucks",
			"Shaquille ONeal": "Diesel",
			"Magic Johnson": "Showtime",
			"Larry Bird": "Celtics",
			"Tim Duncan": "Spurs",
			"Rafael Nadal": "España",
			"Roger Federer": "Suiza",
			"Novak Djokovic": "Serbia",
			"Serena Williams": "USA",
			"Naomi Osaka": "Japón",
			"Carlos Alcaraz": "Joven",
			"Andy Murray": "Reino Unido",
			"Maria Sharapova": "Rusia",
			"Iga Swiatek": "Polonia",
			"Daniil Medvedev": "Rusia",
			"Usain Bolt": "Jamaica",
			"Michael Phelps": "Natación",
			"Simone Biles": "Gimnasia",
			"Katie Ledecky": "Agua",
			"Allyson Felix": "Velocidad",
			"Eliud Kipchoge": "Maratón",
			"Floyd Mayweather": "Dinero",
			"Manny Pacquiao": "Filipinas",
			"Canelo Álvarez": "México",
			"Tyson Fury": "Gigante",
		},
	},
}
